package utils

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/cenkalti/backoff"
)

// DownloadRemoteGraph fetches a serialized graph over HTTP into
// destDir, retrying with exponential backoff, and returns the path
// of the downloaded file
func DownloadRemoteGraph(graphUrl string, destDir string) (string, error) {
	destPath := path.Join(destDir, path.Base(graphUrl))

	download := func() error {
		response, responseErr := http.Get(graphUrl)
		if responseErr != nil {
			return responseErr
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d downloading %s", response.StatusCode, graphUrl)
		}

		file, fileErr := os.Create(destPath)
		if fileErr != nil {
			return backoff.Permanent(fileErr)
		}
		defer file.Close()

		_, copyErr := io.Copy(file, response.Body)
		return copyErr
	}

	if err := backoff.Retry(download, backoff.NewExponentialBackOff()); err != nil {
		return "", err
	}

	fmt.Printf("Downloaded %s to %s\n", graphUrl, destPath)

	return destPath, nil
}
