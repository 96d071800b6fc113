package usecase

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/asteca/isofetch/pkg/domain/model"
	"github.com/asteca/isofetch/pkg/domain/types"
)

// blockHeader marks the start of one age bin in the downloaded table
const blockHeader = "# Zini"

// labelColumn is the evolutionary-stage column used by the label==9 filter
const labelColumn = "label"

// BlockReader lazily splits a downloaded isochrone table into its age
// bins. Blocks are yielded in file order; the sequence is finite and not
// restartable.
type BlockReader struct {
	scanner    *bufio.Scanner
	pending    string // Header line consumed while scanning the previous block
	index      int
	dropLabel9 bool
	exhausted  bool
}

// NewBlockReader creates a reader over raw table text. When dropLabel9 is
// set, rows whose label column equals 9 are omitted from the blocks.
func NewBlockReader(r io.Reader, dropLabel9 bool) *BlockReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &BlockReader{scanner: sc, dropLabel9: dropLabel9}
}

// Next returns the following age bin, or io.EOF after the last one. A
// table with no block header at all is a parse error.
func (br *BlockReader) Next() (*model.Block, error) {
	if br.exhausted {
		return nil, io.EOF
	}

	header := br.pending
	br.pending = ""

	// Seek the next block header
	for header == "" {
		if !br.scanner.Scan() {
			br.exhausted = true
			if err := br.scanner.Err(); err != nil {
				return nil, goerr.Wrap(err, "failed to read table", goerr.T(types.ErrTagParse))
			}
			if br.index == 0 {
				return nil, goerr.New("table has no isochrone blocks", goerr.T(types.ErrTagParse))
			}
			return nil, io.EOF
		}
		if line := br.scanner.Text(); strings.HasPrefix(line, blockHeader) {
			header = line
		}
	}

	columns := strings.Fields(strings.TrimPrefix(header, "#"))
	block := &model.Block{
		Index:   br.index,
		Columns: columns,
	}

	ageIdx := indexOf(columns, "logAge")
	labelIdx := indexOf(columns, labelColumn)

	for br.scanner.Scan() {
		line := br.scanner.Text()
		if strings.HasPrefix(line, blockHeader) {
			br.pending = line
			break
		}
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if br.dropLabel9 && labelIdx >= 0 && labelIdx < len(fields) && fields[labelIdx] == "9" {
			continue
		}
		if block.Lines == nil && ageIdx >= 0 && ageIdx < len(fields) {
			if v, err := strconv.ParseFloat(fields[ageIdx], 64); err == nil {
				block.LogAge = v
			}
		}
		block.Lines = append(block.Lines, line)
	}

	if err := br.scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to read table", goerr.T(types.ErrTagParse))
	}
	if br.pending == "" {
		br.exhausted = true
	}

	br.index++
	return block, nil
}

func indexOf(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}
	return -1
}

// WriteBlock writes one age bin into dir, named by the metallicity and age
// it belongs to, overwriting any existing file. The age comment line is
// restored since the service rounds the logAge column.
func WriteBlock(dir string, z, logAge float64, block *model.Block) (string, error) {
	name := fmt.Sprintf("z%s_a%s.dat", numToName(z, 6), numToName(logAge, 4))
	path := filepath.Join(dir, name)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Age = %.6E yr\n", ageYears(logAge))
	sb.WriteString("# " + strings.Join(block.NormalizedColumns(), " ") + "\n")
	for _, line := range block.Lines {
		sb.WriteString(line + "\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write isochrone file", goerr.V("path", path))
	}
	return path, nil
}

// numToName formats a value for use in a file name, "9.55" -> "9_5500"
func numToName(v float64, prec int) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', prec, 64), ".", "_")
}

func ageYears(logAge float64) float64 {
	return math.Pow(10, logAge)
}
