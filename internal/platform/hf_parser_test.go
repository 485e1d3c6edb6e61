package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelURL_SingleFile(t *testing.T) {
	files, err := ParseModelURL("https://huggingface.co/org/model/resolve/main/model-q4.gguf")
	require.NoError(t, err)
	require.Len(t, files, 1)

	mf := files[0]
	assert.Equal(t, "org", mf.Author)
	assert.Equal(t, "model", mf.Repo)
	assert.Equal(t, "model-q4", mf.Name)
	assert.Equal(t, ".gguf", mf.Extension)
	assert.Equal(t, "https://huggingface.co/org/model/resolve/main/model-q4.gguf", mf.DownloadURL)
	assert.False(t, mf.IsSplit())
}

func TestParseModelURL_SplitSeries(t *testing.T) {
	files, err := ParseModelURL("https://huggingface.co/org/model/resolve/main/model-00002-of-00003.gguf")
	require.NoError(t, err)
	require.Len(t, files, 3)

	// Submitted file comes first
	assert.Equal(t, "model-00002-of-00003", files[0].Name)
	assert.Equal(t, 2, files[0].PartIndex)
	assert.Equal(t, 3, files[0].TotalParts)
	assert.Equal(t, "https://huggingface.co/org/model/resolve/main/model-00002-of-00003.gguf", files[0].DownloadURL)

	// Remaining parts are enumerated in order
	assert.Equal(t, "model-00001-of-00003", files[1].Name)
	assert.Equal(t, "https://huggingface.co/org/model/resolve/main/model-00001-of-00003.gguf", files[1].DownloadURL)
	assert.Equal(t, "model-00003-of-00003", files[2].Name)
	assert.Equal(t, "https://huggingface.co/org/model/resolve/main/model-00003-of-00003.gguf", files[2].DownloadURL)

	for _, mf := range files {
		assert.True(t, mf.IsSplit())
		assert.Equal(t, "org", mf.Author)
		assert.Equal(t, "model", mf.Repo)
	}
}

func TestParseModelURL_QueryStringDropped(t *testing.T) {
	files, err := ParseModelURL("https://huggingface.co/org/model/resolve/main/model-00001-of-00002.gguf?download=true")
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Sibling URLs must not carry the query string
	assert.Equal(t, "https://huggingface.co/org/model/resolve/main/model-00002-of-00002.gguf", files[1].DownloadURL)
}

func TestParseModelURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"no scheme", "huggingface.co/org/model/resolve/main/file.gguf"},
		{"bad scheme", "ftp://huggingface.co/org/model/resolve/main/file.gguf"},
		{"too few segments", "https://huggingface.co/org"},
		{"no filename", "https://huggingface.co/org/model"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseModelURL(test.url)
			assert.Error(t, err)
		})
	}
}

func TestParseModelURL_NoExtension(t *testing.T) {
	files, err := ParseModelURL("https://huggingface.co/org/model/resolve/main/LICENSE")
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "LICENSE", files[0].Name)
	assert.Equal(t, "", files[0].Extension)
	assert.Equal(t, "LICENSE", files[0].Filename())
}
