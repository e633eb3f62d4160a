// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once, when the Fetcher is constructed, and its bytes are
// cached. Fetch hands out copies of that snapshot, so later edits to the file
// are not observed; building a new Fetcher is how a reload picks them up.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/test.cfg")()
//	if err != nil {
//	    // missing file, directory path, file larger than MaxFileSize...
//	}
//	data, err := fetcher.Fetch()
//
// Errors carry the cleaned path. Use errors.Is with ErrPathIsDirectory or
// ErrFileTooLarge, or with fs.ErrNotExist for missing files.
package file
