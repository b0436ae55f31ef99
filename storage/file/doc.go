// Package file provides file-system backed storage for the configuration manager.
//
// A Store reads the whole configuration file on every Read and replaces it
// atomically on every Write, so a crash in the middle of a save never leaves a
// truncated file behind. Writes go through github.com/google/renameio/v2:
// the data is written to a temporary file in the same directory, synced and
// renamed over the target.
//
// Usage:
//
//	store := file.New("/home/user/.config/myapp/config.toml")
//	data, err := store.Read() // creates an empty file on first run
//	if err != nil {
//	    // Handle error: permission denied, path is directory, etc.
//	}
//	err = store.Write(data)
//
// Error Handling:
//   - Errors include the file path for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
