package fsutils

import (
	"io"
	"log"
	"os"
)

var osOpen = os.Open

// ReadFileHead reads at most max bytes from the beginning of the file.
// A short file is not an error.
func ReadFileHead(filePath string, max int) (data []byte, err error) {
	file, err := osOpen(filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("failed to close file %v: %v", filePath, err)
		}
	}()
	data = make([]byte, max)
	n, err := io.ReadFull(file, data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return data[:n], err
}
