package platform

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/hfget/hf-model-downloader/internal/model"
)

// Minimum path segments in a model URL: author and repository
const minURLSegments = 2

// splitSeriesRegex captures model files split into parts, e.g.
// model-00001-of-00003.gguf -> base "model", part 1, total 3.
var splitSeriesRegex = regexp.MustCompile(`^(?P<base>.+)-(?P<part>\d{5})-of-(?P<total>\d{5})$`)

// ParseModelURL parses a Hugging Face model file URL and returns metadata for
// the referenced file. When the filename matches the split-series pattern, the
// whole series is enumerated; the first element is always the submitted file.
// Series siblings are informational only — a download job covers exactly the
// submitted URL.
func ParseModelURL(rawURL string) ([]*model.ModelFile, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("URL is empty")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid URL: scheme and host are required")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL: scheme must be http or https")
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < minURLSegments {
		return nil, fmt.Errorf("invalid URL: expected /author/repository/... path")
	}
	author := segments[0]
	repo := segments[1]

	filename := path.Base(parsed.Path)
	if filename == "." || filename == "/" || filename == repo {
		return nil, fmt.Errorf("invalid URL: no file name in path")
	}
	extension := path.Ext(filename)
	name := strings.TrimSuffix(filename, extension)

	// Base URL is everything before the final path segment; the query string
	// (e.g. ?download=true) is dropped so series siblings resolve cleanly.
	stripped := *parsed
	stripped.RawQuery = ""
	stripped.Fragment = ""
	baseURL := stripped.String()
	if idx := strings.LastIndex(baseURL, "/"); idx >= 0 {
		baseURL = baseURL[:idx]
	}

	match := splitSeriesRegex.FindStringSubmatch(name)
	if match == nil {
		return []*model.ModelFile{{
			DownloadURL: rawURL,
			Author:      author,
			Repo:        repo,
			Name:        name,
			Extension:   extension,
		}}, nil
	}

	base := match[splitSeriesRegex.SubexpIndex("base")]
	part, _ := strconv.Atoi(match[splitSeriesRegex.SubexpIndex("part")])
	total, _ := strconv.Atoi(match[splitSeriesRegex.SubexpIndex("total")])

	results := make([]*model.ModelFile, 0, total)
	submitted := &model.ModelFile{
		DownloadURL: rawURL,
		Author:      author,
		Repo:        repo,
		Name:        name,
		Extension:   extension,
		PartIndex:   part,
		TotalParts:  total,
	}
	results = append(results, submitted)

	for i := 1; i <= total; i++ {
		if i == part {
			continue
		}
		partName := fmt.Sprintf("%s-%05d-of-%05d", base, i, total)
		results = append(results, &model.ModelFile{
			DownloadURL: fmt.Sprintf("%s/%s%s", baseURL, partName, extension),
			Author:      author,
			Repo:        repo,
			Name:        partName,
			Extension:   extension,
			PartIndex:   i,
			TotalParts:  total,
		})
	}

	return results, nil
}
