package storage

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Lawhacknifemi/real-estate/utils"
)

// UploadCloudinary sends an image to the Cloudinary signed upload endpoint and
// returns its public URL. The folder is folded into the public id so that one
// signature covers both.
func UploadCloudinary(data []byte, contentType, publicID string) (string, error) {
	conf := utils.Conf
	if conf.CloudinaryCloudName == "" || conf.CloudinaryAPIKey == "" || conf.CloudinaryAPISecret == "" {
		return "", errors.New("cloudinary credentials not configured")
	}

	finalPublicID := publicID
	if conf.CloudinaryFolder != "" {
		finalPublicID = conf.CloudinaryFolder + "/" + publicID
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}
	payload := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", finalPublicID, timestamp, conf.CloudinaryAPISecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))

	form := url.Values{}
	form.Add("file", payload)
	form.Add("api_key", conf.CloudinaryAPIKey)
	form.Add("public_id", finalPublicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := "https://api.cloudinary.com/v1_1/" + conf.CloudinaryCloudName + "/image/upload"
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cloudinary returned %d: %s", res.StatusCode, string(body))
	}

	var cloudRes struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &cloudRes); err != nil {
		return "", err
	}
	if cloudRes.Error.Message != "" {
		return "", errors.New("cloudinary error: " + cloudRes.Error.Message)
	}

	out := cloudRes.SecureURL
	if out == "" {
		out = cloudRes.URL
	}
	if out == "" {
		return "", errors.New("cloudinary returned no URL")
	}
	return out, nil
}
