package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/hupe1980/agentroute/tool"
)

const (
	defaultQRSize = 200
	minQRSize     = 100
	maxQRSize     = 500
)

// QRCodeTool generates QR codes for plain text, URLs, WiFi credentials and
// vCard contacts, returning either a base64 PNG or a short description.
type QRCodeTool struct{}

var _ tool.Tool = (*QRCodeTool)(nil)

// NewQRCodeTool constructs a QRCodeTool.
func NewQRCodeTool() *QRCodeTool { return &QRCodeTool{} }

// Name implements tool.Tool.
func (t *QRCodeTool) Name() string { return "QRCodeTool" }

// Description implements tool.Tool.
func (t *QRCodeTool) Description() string {
	return "Generate QR codes for URLs, text, contact information, or WiFi credentials"
}

// Parameters implements tool.Tool.
func (t *QRCodeTool) Parameters() []tool.Parameter {
	return []tool.Parameter{
		{Name: "content", Type: "string", Description: "The content to encode (URL, text, contact info, etc.)", Required: true},
		{Name: "qr_type", Type: "string", Description: "Type of QR content (url, text, contact, wifi)", Required: false, Default: "text"},
		{Name: "size", Type: "integer", Description: "Size of the QR code in pixels (default: 200, range: 100-500)", Required: false},
		{Name: "format", Type: "string", Description: "Output format (base64 or description)", Required: false, Default: "description"},
		{Name: "name", Type: "string", Description: "Name for contact QR codes", Required: false},
		{Name: "phone", Type: "string", Description: "Phone number for contact QR codes", Required: false},
		{Name: "email", Type: "string", Description: "Email for contact QR codes", Required: false},
		{Name: "ssid", Type: "string", Description: "WiFi network name for wifi QR codes", Required: false},
		{Name: "password", Type: "string", Description: "WiFi password for wifi QR codes", Required: false},
		{Name: "encryption", Type: "string", Description: "WiFi encryption type (WPA, WEP, nopass)", Required: false, Default: "WPA"},
	}
}

// Call implements tool.Tool.
func (t *QRCodeTool) Call(_ context.Context, args map[string]any) (string, error) {
	content, _ := args["content"].(string)
	qrType, _ := args["qr_type"].(string)
	format, _ := args["format"].(string)

	size := intArg(args, "size", defaultQRSize)
	if size < minQRSize {
		size = minQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}

	payload, err := buildQRPayload(qrType, content, args)
	if err != nil {
		return "", err
	}

	png, err := qrcode.Encode(payload, qrcode.Low, size)
	if err != nil {
		return "", fmt.Errorf("qrcode: failed to encode: %w", err)
	}

	if strings.EqualFold(format, "base64") {
		return base64.StdEncoding.EncodeToString(png), nil
	}
	return fmt.Sprintf("Generated a %dx%d QR code (%s) encoding %d bytes of %s content.",
		size, size, "PNG", len(payload), normalizeQRType(qrType)), nil
}

func normalizeQRType(qrType string) string {
	switch strings.ToLower(qrType) {
	case "url":
		return "url"
	case "wifi":
		return "wifi"
	case "contact":
		return "contact"
	default:
		return "text"
	}
}

// buildQRPayload assembles the encoded string for the requested type:
// WIFI: segments for wifi, a minimal vCard 3.0 for contacts, and the raw
// content otherwise.
func buildQRPayload(qrType, content string, args map[string]any) (string, error) {
	switch normalizeQRType(qrType) {
	case "wifi":
		ssid, _ := args["ssid"].(string)
		password, _ := args["password"].(string)
		encryption, _ := args["encryption"].(string)
		if ssid == "" {
			return "", fmt.Errorf("qrcode: wifi QR codes require an ssid")
		}
		if encryption == "" {
			encryption = "WPA"
		}
		return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", encryption, ssid, password), nil
	case "contact":
		name, _ := args["name"].(string)
		phone, _ := args["phone"].(string)
		email, _ := args["email"].(string)
		if name == "" || phone == "" {
			return "", fmt.Errorf("qrcode: contact QR codes require name and phone")
		}
		vcard := fmt.Sprintf("BEGIN:VCARD\nVERSION:3.0\nFN:%s\nTEL:%s", name, phone)
		if email != "" {
			vcard += fmt.Sprintf("\nEMAIL:%s", email)
		}
		return vcard + "\nEND:VCARD", nil
	default:
		if content == "" {
			return "", fmt.Errorf("qrcode: content cannot be empty")
		}
		return content, nil
	}
}
