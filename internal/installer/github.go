package installer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"aictl/internal/config"
	"aictl/internal/logger"
)

// GitHubRelease is the subset of the GitHub release JSON response we need.
type GitHubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// archiveSuffixes are the release asset formats the extractor understands.
var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".zip", ".7z"}

// assetPatterns returns filename fragments identifying a release asset for
// the local OS/arch, most specific first. Release naming is wildly
// inconsistent across projects, so several aliases per platform are tried.
func assetPatterns() []string {
	osys := runtime.GOOS
	arch := runtime.GOARCH

	archAliases := map[string][]string{
		"amd64": {"amd64", "x86_64", "x64"},
		"arm64": {"arm64", "aarch64"},
	}
	osAliases := map[string][]string{
		"darwin": {"darwin", "macos", "mac"},
		"linux":  {"linux"},
	}

	var patterns []string
	for _, o := range osAliases[osys] {
		for _, a := range archAliases[arch] {
			patterns = append(patterns, o+"_"+a, o+"-"+a, a+"-"+o, a+"_"+o)
		}
	}
	// Last resort: asset named only for the OS.
	patterns = append(patterns, osAliases[osys]...)
	return patterns
}

// downloadFromGitHub installs a tool from its GitHub release: fetches the
// release metadata, picks the asset matching the local OS/arch, downloads
// and extracts it, and copies the binary into binDir. Returns the installed
// path.
func downloadFromGitHub(tool config.Tool, binDir string) (string, error) {
	repo := tool.Repo
	if repo == "" {
		repo = tool.Name
	}

	var url string
	if tool.Tag != "" {
		url = fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/%s", repo, tool.Tag)
	} else if tool.Version != "" && tool.Version != "latest" {
		url = fmt.Sprintf("https://api.github.com/repos/%s/releases/tags/v%s", repo, tool.Version)
	} else {
		url = fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo)
	}
	logger.Debug("[DEBUG] Fetching GitHub release from %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("HTTP GET error fetching release for %s: %w", tool.Name, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub release fetch failed for %s: HTTP status %d", tool.Name, resp.StatusCode)
	}

	var release GitHubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", fmt.Errorf("failed to decode GitHub release JSON for %s: %w", tool.Name, err)
	}
	logger.Debug("[DEBUG] Release %s with %d assets\n", release.TagName, len(release.Assets))

	var assetURL, assetName string
	for _, pattern := range assetPatterns() {
		for _, asset := range release.Assets {
			name := strings.ToLower(asset.Name)
			if !strings.Contains(name, pattern) {
				continue
			}
			for _, suffix := range archiveSuffixes {
				if strings.HasSuffix(name, suffix) {
					assetURL = asset.BrowserDownloadURL
					assetName = asset.Name
					break
				}
			}
			if assetURL != "" {
				break
			}
		}
		if assetURL != "" {
			break
		}
	}
	if assetURL == "" {
		return "", fmt.Errorf("no asset matching %s/%s in release %s of %s",
			runtime.GOOS, runtime.GOARCH, release.TagName, repo)
	}

	scratch, err := os.MkdirTemp("", "aictl-"+tool.Name+"-")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	archivePath := filepath.Join(scratch, path.Base(assetURL))
	logger.Info("[INFO] Downloading %s...\n", assetName)
	if err := downloadFile(assetURL, archivePath); err != nil {
		return "", err
	}

	installed, err := ExtractAndInstall(archivePath, scratch, binDir)
	if err != nil {
		return "", fmt.Errorf("failed to extract %s: %w", assetName, err)
	}
	logger.Info("[INFO] Installed %s\n", installed)
	return installed, nil
}

// downloadFile downloads the content at url to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %v\n", cerr)
		}
	}()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write response to file: %w", err)
	}
	logger.Debug("[DEBUG] Downloaded asset to %s\n", destPath)
	return nil
}
