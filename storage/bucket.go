package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Lawhacknifemi/real-estate/utils"
)

// UploadBucket writes an object through the Cloud Storage JSON API and returns
// its public media URL.
func UploadBucket(data []byte, contentType, objectName string) (string, error) {
	conf := utils.Conf
	if conf.BucketName == "" || conf.BucketToken == "" {
		return "", errors.New("bucket storage not configured")
	}

	endpoint := fmt.Sprintf(
		"https://storage.googleapis.com/upload/storage/v1/b/%s/o?uploadType=media&name=%s",
		url.PathEscape(conf.BucketName), url.QueryEscape(objectName))

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+conf.BucketToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("bucket upload returned %d: %s", res.StatusCode, string(body))
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", conf.BucketName, objectName), nil
}
