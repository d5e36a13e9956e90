package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestQRCodeTool_TextDescription(t *testing.T) {
	qt := NewQRCodeTool()

	out, err := qt.Call(context.Background(), map[string]any{
		"content": "https://example.com",
		"qr_type": "url",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "200x200")
	assert.Contains(t, out, "url content")
}

func TestQRCodeTool_Base64Output(t *testing.T) {
	qt := NewQRCodeTool()

	out, err := qt.Call(context.Background(), map[string]any{
		"content": "hello",
		"format":  "base64",
	})
	require.NoError(t, err)

	png, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestQRCodeTool_SizeClamp(t *testing.T) {
	qt := NewQRCodeTool()

	out, err := qt.Call(context.Background(), map[string]any{
		"content": "hello",
		"size":    float64(50),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "100x100")

	out, err = qt.Call(context.Background(), map[string]any{
		"content": "hello",
		"size":    9000,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "500x500")
}

func TestQRCodeTool_EmptyContent(t *testing.T) {
	qt := NewQRCodeTool()

	_, err := qt.Call(context.Background(), map[string]any{"content": ""})
	assert.Error(t, err)
}

func TestQRCodeTool_WifiPayload(t *testing.T) {
	payload, err := buildQRPayload("wifi", "", map[string]any{
		"ssid":       "HomeNet",
		"password":   "hunter2",
		"encryption": "WPA",
	})
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:HomeNet;P:hunter2;;", payload)
}

func TestQRCodeTool_WifiDefaultsEncryption(t *testing.T) {
	payload, err := buildQRPayload("wifi", "", map[string]any{"ssid": "HomeNet"})
	require.NoError(t, err)
	assert.Contains(t, payload, "T:WPA")
}

func TestQRCodeTool_WifiRequiresSSID(t *testing.T) {
	_, err := buildQRPayload("wifi", "", map[string]any{"password": "hunter2"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ssid")
}

func TestQRCodeTool_ContactVCard(t *testing.T) {
	payload, err := buildQRPayload("contact", "", map[string]any{
		"name":  "Ada Lovelace",
		"phone": "+44123456",
		"email": "ada@example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, payload, "BEGIN:VCARD")
	assert.Contains(t, payload, "FN:Ada Lovelace")
	assert.Contains(t, payload, "TEL:+44123456")
	assert.Contains(t, payload, "EMAIL:ada@example.com")
	assert.Contains(t, payload, "END:VCARD")
}

func TestQRCodeTool_ContactRequiresNameAndPhone(t *testing.T) {
	_, err := buildQRPayload("contact", "", map[string]any{"name": "Ada"})
	assert.Error(t, err)
}

func TestQRCodeTool_RequiredParameterDeclared(t *testing.T) {
	qt := NewQRCodeTool()

	var contentRequired bool
	for _, p := range qt.Parameters() {
		if p.Name == "content" {
			contentRequired = p.Required
		}
	}
	assert.True(t, contentRequired)
}
