package adapters

import "testing"

func TestContentSniffer_Sniff(t *testing.T) {
	sniffer := NewContentSniffer()

	tests := []struct {
		name    string
		content []byte
		mime    string
		ext     string
	}{
		{
			name:    "png magic bytes",
			content: []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00},
			mime:    "image/png",
			ext:     "png",
		},
		{
			name:    "jpeg magic bytes",
			content: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46},
			mime:    "image/jpeg",
			ext:     "jpg",
		},
		{
			name:    "gif magic bytes",
			content: []byte("GIF89a\x01\x00\x01\x00"),
			mime:    "image/gif",
			ext:     "gif",
		},
		{
			name:    "pdf magic bytes",
			content: []byte("%PDF-1.4\n%âãÏÓ"),
			mime:    "application/pdf",
			ext:     "pdf",
		},
		{
			name:    "unrecognized bytes fall back to png",
			content: []byte{0x00, 0x01, 0x02, 0x03, 0xAA, 0xBB},
			mime:    "image/png",
			ext:     "png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sniffed := sniffer.Sniff(tt.content)
			if sniffed.MIME != tt.mime {
				t.Errorf("expected MIME %s, got %s", tt.mime, sniffed.MIME)
			}
			if sniffed.Extension != tt.ext {
				t.Errorf("expected extension %s, got %s", tt.ext, sniffed.Extension)
			}
		})
	}
}
