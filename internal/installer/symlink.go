// Package installer handles the two ways aictl touches the machine: the
// symlink installation of the dotfiles repo into ~/.claude, and syncing the
// external AI CLI binaries themselves.
package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"aictl/internal/config"
	"aictl/internal/logger"
)

// InstallSymlinks replaces the configured subdirectories of the target
// (normally ~/.claude) with symlinks into the dotfiles repo, so edits in the
// repo are live immediately.
//
// The target is backed up first — copy, not move — so a failure partway
// through leaves a full restore point. The backup path is returned.
func InstallSymlinks(repoRoot string, inst config.Install) (string, error) {
	target := config.ExpandHome(inst.Target)

	backup := ""
	if _, err := os.Stat(target); err == nil {
		backup = fmt.Sprintf("%s.backup-%s", target, time.Now().Format("20060102-150405"))
		logger.Info("[INFO] Backing up %s to %s\n", target, backup)
		if err := copyDir(target, backup); err != nil {
			return "", fmt.Errorf("backup failed, aborting before any destructive step: %w", err)
		}
	} else {
		if err := os.MkdirAll(target, 0755); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", target, err)
		}
	}

	for _, dir := range inst.LinkDirs {
		src := filepath.Join(repoRoot, dir)
		dst := filepath.Join(target, dir)

		if _, err := os.Stat(src); err != nil {
			logger.Warn("[WARN] Repo directory %s missing. Skipping link.\n", src)
			continue
		}

		// Idempotent re-run: leave links that already point at the repo.
		if existing, err := os.Readlink(dst); err == nil && existing == src {
			logger.Debug("[DEBUG] %s already links to %s\n", dst, src)
			continue
		}

		if err := os.RemoveAll(dst); err != nil {
			return backup, fmt.Errorf("failed to remove %s: %w", dst, err)
		}
		if err := os.Symlink(src, dst); err != nil {
			return backup, fmt.Errorf("failed to link %s -> %s: %w", dst, src, err)
		}
		logger.Info("[INFO] Linked %s -> %s\n", dst, src)
	}

	return backup, nil
}

// copyDir recursively copies a directory tree, preserving file modes.
// Symlinks inside the tree are copied as links.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		targetPath := filepath.Join(dst, rel)

		info, err := d.Info()
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			return os.MkdirAll(targetPath, info.Mode().Perm())
		case info.Mode()&os.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, targetPath)
		default:
			return copyFile(path, targetPath, info.Mode().Perm())
		}
	})
}

// copyFile copies a single file, creating missing parent directories.
func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}
	return nil
}
