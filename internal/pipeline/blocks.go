package pipeline

import "strings"

// fenceMarker opens and closes a fenced code block.
const fenceMarker = "```"

// Block is the ordered list of physical lines of one semantic unit.
type Block []string

// SplitBlocks splits text into blocks separated by blank lines.
// A whitespace-only line counts as blank. Lines are otherwise kept as written,
// so code lines reach the fence joiner intact; TrimLine strips the trailing
// whitespace of everything else. Empty input yields no blocks.
func SplitBlocks(text string) []Block {
	var blocks []Block
	var current Block

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}

	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// TrimLine drops trailing whitespace from a non-code line. Leading
// indentation is kept.
func TrimLine(line string) string {
	return strings.TrimRight(line, " \t")
}

// JoinCodeFences merges blocks that the blank-line split cut through the
// middle of a fenced code block.
//
// A block whose first line is a fence opens a code block. Blocks that follow
// while the fence is open are appended to it, separated by an empty line
// standing for the blank line that split them. The first closing fence ends
// the code block and is dropped; any lines after it in the same block start
// a new block. An unterminated fence runs to the end of the document.
func JoinCodeFences(blocks []Block) []Block {
	joined := make([]Block, 0, len(blocks))
	insideFence := false

	for _, block := range blocks {
		lines := block
		for len(lines) > 0 {
			start := 0
			if insideFence {
				last := len(joined) - 1
				joined[last] = append(joined[last], "")
			} else {
				if !isFence(lines[0]) {
					joined = append(joined, lines)
					break
				}
				insideFence = true
				joined = append(joined, Block{lines[0]})
				start = 1
			}

			last := len(joined) - 1
			end := closingFence(lines, start)
			if end < 0 {
				joined[last] = append(joined[last], lines[start:]...)
				break
			}
			joined[last] = append(joined[last], lines[start:end]...)
			insideFence = false
			lines = lines[end+1:]
		}
	}

	return joined
}

// isFence reports whether line opens a fenced code block.
// The fence may carry an info string ("```go").
func isFence(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), fenceMarker)
}

// closingFence returns the index of the first closing fence in lines at or
// after start, or -1.
func closingFence(lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == fenceMarker {
			return i
		}
	}
	return -1
}
