// Package share builds the links a donor uses to spread a campaign: social
// network share URLs, per-project landing URLs and QR code images of them.
//
//	u, _ := share.ProjectURL("https://give.utaipei.edu.tw", "scholarship", 5000)
//	links := share.All(u, "")          // facebook, twitter and line URLs
//	png, _ := share.QRCode(u, 256)     // PNG bytes
//
// QR codes are rendered with github.com/skip2/go-qrcode.
package share
