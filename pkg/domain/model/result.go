package model

// FetchResult summarizes a completed pipeline run
type FetchResult struct {
	OutDir        string   // Directory the files were written into
	Files         []string // Paths of the written per-age files
	Metallicities int      // Number of metallicity values queried
	Bytes         int64    // Total size of the downloaded tables
}
