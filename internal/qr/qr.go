package qr

import (
	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// GeneratePNG 將 guest id 編成 QR PNG。payload 只有 id 本身，
// 不含姓名或 email。
func GeneratePNG(payload string) ([]byte, error) {
	return qrcode.Encode(payload, qrcode.Medium, imageSize)
}
