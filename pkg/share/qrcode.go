package share

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultQRSize = 256
	MaxQRSize     = 1024
)

// QRCode renders content as a PNG of size x size pixels. Non-positive sizes
// use DefaultQRSize; sizes above MaxQRSize are clamped.
func QRCode(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	switch {
	case size <= 0:
		size = DefaultQRSize
	case size > MaxQRSize:
		size = MaxQRSize
	}

	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrQRCodeFailed, err)
	}
	return png, nil
}

// QRCodeDataURI returns the QR code as a data URI usable in an img src.
func QRCodeDataURI(content string, size int) (string, error) {
	png, err := QRCode(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
