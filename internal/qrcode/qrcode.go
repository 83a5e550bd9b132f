package qrcode

import qr "github.com/skip2/go-qrcode"

// Generate creates a QR code PNG image for the given URL.
func Generate(url string) ([]byte, error) {
	return qr.Encode(url, qr.Medium, 256)
}

// Terminal renders the QR code for url as block characters for a terminal.
func Terminal(url string) (string, error) {
	code, err := qr.New(url, qr.Medium)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}
