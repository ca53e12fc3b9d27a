package constants

import "testing"

func TestDetectAssetKind(t *testing.T) {
	cases := map[string]AssetKind{
		"q.png":      AssetImage,
		"Q.JPG":      AssetImage,
		"007.webp":   AssetImage,
		"sheet.pdf":  AssetPDF,
		"listen.mp3": AssetAudio,
		"notes.txt":  AssetUnknown,
		"noext":      AssetUnknown,
	}
	for name, want := range cases {
		if got := DetectAssetKind(name); got != want {
			t.Errorf("DetectAssetKind(%q) = %s, want %s", name, got, want)
		}
	}
}
