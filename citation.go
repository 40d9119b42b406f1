package askdocs

import "strings"

// SentinelUnidentifiedSources is emitted when the delegate's free-text answer
// appears to rely on the knowledge base but no specific file could be
// identified in it.
const SentinelUnidentifiedSources = "sources used but not identifiable"

// InferSources attributes knowledge files to a free-text answer by string
// matching. This is an explicitly best-effort heuristic: false positives and
// false negatives are expected and acceptable. It never invents names: every
// returned entry is either a member of files or the sentinel.
//
// The strategy, in order:
//
//  1. Case-insensitive containment of each file name in the answer, with
//     and without its extension.
//  2. Failing that, only lines that mention "source" together with a
//     file-like token (".md" or the word "file") are searched the same way.
//  3. Failing that, if any knowledge file exists at all, the single
//     sentinel entry is returned.
//
// The second return value reports whether any source was attributed.
func InferSources(answer string, files []string) ([]string, bool) {
	if len(files) == 0 {
		return []string{}, false
	}

	if matched := matchFiles(answer, files); len(matched) > 0 {
		return matched, true
	}

	var citationLines []string
	for _, line := range strings.Split(answer, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "source") {
			continue
		}
		if strings.Contains(lower, KnowledgeExt) || strings.Contains(lower, "file") {
			citationLines = append(citationLines, line)
		}
	}
	if len(citationLines) > 0 {
		if matched := matchFiles(strings.Join(citationLines, "\n"), files); len(matched) > 0 {
			return matched, true
		}
	}

	return []string{SentinelUnidentifiedSources}, true
}

// matchFiles returns the files whose name, with or without extension, occurs
// case-insensitively in text. Order follows files.
func matchFiles(text string, files []string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, name := range files {
		stem := strings.TrimSuffix(name, KnowledgeExt)
		if strings.Contains(lower, strings.ToLower(name)) || strings.Contains(lower, strings.ToLower(stem)) {
			matched = append(matched, name)
		}
	}
	return matched
}
