package processor

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"embedfix/internal/config"
	"embedfix/internal/errors"
	"embedfix/internal/models"
)

// Converter rewrites every recognized embed of one provider in a document
type Converter interface {
	Provider() string
	Convert(text string) (string, []models.EmbedMatch)
}

// Processor applies a Converter to files on disk
type Processor struct {
	converter Converter
	provider  config.ProviderConfig
	opts      config.Options
}

// New creates a processor for one provider. The provider decides which files
// are walked and how a converted file is detected.
func New(converter Converter, provider config.ProviderConfig, opts config.Options) *Processor {
	return &Processor{
		converter: converter,
		provider:  provider,
		opts:      opts,
	}
}

// ProcessFile converts one file. When output is empty the input file is
// overwritten. Nothing is written unless at least one embed changed.
// Failures are returned in the result, never as a panic or a separate error.
func (p *Processor) ProcessFile(input, output string) models.ConversionResult {
	if output == "" {
		output = input
	}
	res := models.ConversionResult{Path: input, OutputPath: output, DryRun: p.opts.DryRun}

	data, err := os.ReadFile(input)
	if err != nil {
		if errors.IsNotFound(err) {
			res.Err = errors.NewNotFoundError("file", input)
		} else {
			res.Err = errors.NewFileError("read", input, err)
		}
		return res
	}
	if !utf8.Valid(data) {
		res.Err = errors.NewEncodingError(input)
		return res
	}

	content := string(data)
	converted, matches := p.converter.Convert(content)
	res.Matches = matches
	res.Replacements = len(matches)

	changed := converted != content
	if p.provider.CountsReplacements {
		changed = res.Replacements > 0
	}
	if !changed {
		return res
	}

	if p.opts.DryRun {
		res.Modified = true
		return res
	}

	perm := fs.FileMode(0o644)
	if info, err := os.Stat(input); err == nil {
		perm = info.Mode().Perm()
	}

	if p.opts.Backup && output == input {
		backup := input + ".bak"
		if err := writeFileAtomic(backup, data, perm); err != nil {
			res.Err = errors.NewFileError("backup", backup, err)
			return res
		}
		res.BackupPath = backup
	}

	if err := writeFileAtomic(output, []byte(converted), perm); err != nil {
		res.Err = errors.NewFileError("write", output, err)
		return res
	}
	res.Modified = true
	return res
}

// FindFiles returns every regular file below root whose extension is in
// extensions. Symlinks are followed when they point at a regular file.
// Directories named in excludeDirs are not descended into, and unreadable
// directories (root included) are skipped.
func FindFiles(root string, extensions, excludeDirs []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NewNotFoundError("directory", root)
		}
		return nil, errors.NewFileError("stat", root, err)
	}
	if !info.IsDir() {
		return nil, errors.NewNotFoundError("directory", root)
	}

	exclude := make(map[string]struct{}, len(excludeDirs))
	for _, name := range excludeDirs {
		if name != "" {
			exclude[strings.ToLower(name)] = struct{}{}
		}
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				return err
			}
			// skip what we cannot read and keep walking
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, skip := exclude[strings.ToLower(d.Name())]; skip && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !config.HasExtension(path, extensions) {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, errors.NewFileError("walk", root, err)
	}
	return files, nil
}

// FindFiles lists the candidate files below root for this processor's
// extensions and excluded directories
func (p *Processor) FindFiles(root string) ([]string, error) {
	return FindFiles(root, p.provider.Extensions, p.opts.ExcludeDirs)
}

// ProcessDirectory converts every candidate file below root, calling onFile
// (if not nil) after each one. The returned error is only set when root
// itself cannot be walked; per-file failures are counted in the summary.
func (p *Processor) ProcessDirectory(root string, onFile func(models.ConversionResult)) (models.BatchSummary, error) {
	files, err := p.FindFiles(root)
	if err != nil {
		return models.BatchSummary{Root: root}, err
	}
	return p.ProcessFiles(root, files, onFile), nil
}

// ProcessFiles converts files in order, overwriting each one in place
func (p *Processor) ProcessFiles(root string, files []string, onFile func(models.ConversionResult)) models.BatchSummary {
	summary := models.BatchSummary{Root: root, FilesFound: len(files)}
	for _, path := range files {
		res := p.ProcessFile(path, path)
		summary.Add(res)
		if onFile != nil {
			onFile(res)
		}
	}
	return summary
}
