package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
)

// ShardPath builds the filename for shard numFile out of totalFiles:
// `{base}_{numFile}_{totalFiles}{ext}` with numFile zero-padded to the
// decimal width of totalFiles. If either is zero, the base filename is
// returned unchanged.
func ShardPath(baseFilename string, numFile, totalFiles int) string {
	if numFile == 0 || totalFiles == 0 {
		return baseFilename
	}
	ext := filepath.Ext(baseFilename)
	base := strings.TrimSuffix(baseFilename, ext)
	padding := len(fmt.Sprint(totalFiles))
	return fmt.Sprintf("%s_%0*d_%d%s", base, padding, numFile, totalFiles, ext)
}

// WriteArticles writes the given articles to path as JSON lines, one
// ASCII-escaped object per line.
func WriteArticles(path string, articles []Article) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create shard: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, art := range articles {
		if art.Sections == nil {
			art.Sections = []Section{}
		}
		line, err := json.Marshal(art)
		if err != nil {
			return fmt.Errorf("marshal article '%s': %w", art.Url, err)
		}
		_, err = w.Write(escapeNonASCII(line))
		if err != nil {
			return fmt.Errorf("write shard: %w", err)
		}
		err = w.WriteByte('\n')
		if err != nil {
			return fmt.Errorf("write shard: %w", err)
		}
	}
	err = w.Flush()
	if err != nil {
		return fmt.Errorf("write shard: %w", err)
	}
	return nil
}

// ReadArticles reads every article in the JSONL file at path, in line order.
// Lines that do not parse are returned as zero Articles so that line indices
// stay aligned with the file.
func ReadArticles(path string) ([]Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open shard: %w", err)
	}
	defer f.Close()

	var articles []Article
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for scanner.Scan() {
		var art Article
		// alignment over strictness, the caller decides what to do with
		// zero records
		_ = json.Unmarshal(scanner.Bytes(), &art)
		articles = append(articles, art)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan shard: %w", err)
	}
	return articles, nil
}

// ReadArticleAt reads the line-th (0-based) article from the JSONL file at path.
func ReadArticleAt(path string, line int) (Article, error) {
	f, err := os.Open(path)
	if err != nil {
		return Article{}, fmt.Errorf("open shard: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for i := 0; scanner.Scan(); i++ {
		if i != line {
			continue
		}
		var art Article
		err = json.Unmarshal(scanner.Bytes(), &art)
		if err != nil {
			return Article{}, fmt.Errorf("unmarshal line %d of '%s': %w", line, path, err)
		}
		return art, nil
	}
	if err := scanner.Err(); err != nil {
		return Article{}, fmt.Errorf("scan shard: %w", err)
	}
	return Article{}, fmt.Errorf("shard '%s' has no line %d", path, line)
}

// escapeNonASCII rewrites every rune above 0x7F as a \uXXXX escape (surrogate
// pairs beyond the BMP), so shards remain pure ASCII on disk.
func escapeNonASCII(line []byte) []byte {
	ascii := true
	for _, b := range line {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return line
	}

	var out []byte
	for _, r := range string(line) {
		if r < 0x80 {
			out = append(out, byte(r))
			continue
		}
		if r > 0xFFFF {
			r1, r2 := utf16.EncodeRune(r)
			out = append(out, fmt.Sprintf(`\u%04x\u%04x`, r1, r2)...)
			continue
		}
		out = append(out, fmt.Sprintf(`\u%04x`, r)...)
	}
	return out
}
