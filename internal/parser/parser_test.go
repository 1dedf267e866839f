package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

func TestExtractDelimitedBlocksRoundTrip(t *testing.T) {
	text := "--- a.txt ---\nhello\n--- end ---\n\n--- src/b.txt ---\nworld\n--- end ---\n"

	files := Extract(text)
	require.Equal(t, types.FileMapping{
		"a.txt":     "hello",
		"src/b.txt": "world",
	}, files)
}

func TestExtractDelimitedMultilineContent(t *testing.T) {
	text := "--- index.html ---\n<!DOCTYPE html>\n<html>\n<body>hi</body>\n</html>\n--- END ---\n"

	files := Extract(text)
	require.Len(t, files, 1)
	// Closing token matches case-insensitively; content kept verbatim
	// apart from surrounding whitespace.
	assert.Equal(t, "<!DOCTYPE html>\n<html>\n<body>hi</body>\n</html>", files["index.html"])
}

func TestExtractDelimitedWinsOverFenced(t *testing.T) {
	text := "--- style.css ---\nbody {}\n--- end ---\n\n```js\nconsole.log('hi');\n```\n"

	files := Extract(text)
	require.Equal(t, types.FileMapping{"style.css": "body {}"}, files)
}

func TestExtractFencedBlocksNamedPositionally(t *testing.T) {
	text := "Here is your site:\n\n```html\n<b>hi</b>\n```\n\nand the styles:\n\n```\nbody { margin: 0; }\n```\n"

	files := Extract(text)
	require.Equal(t, types.FileMapping{
		"file_1.txt": "<b>hi</b>",
		"file_2.txt": "body { margin: 0; }",
	}, files)
}

func TestExtractWholeDocumentHeuristic(t *testing.T) {
	text := "  <!DOCTYPE html>\n<HTML>\n<body>hello</body>\n</HTML>\n  "

	files := Extract(text)
	require.Len(t, files, 1)
	assert.Equal(t, "<!DOCTYPE html>\n<HTML>\n<body>hello</body>\n</HTML>", files["index.html"])
}

func TestExtractFencedWinsOverWholeDocument(t *testing.T) {
	text := "```html\n<html><body>hi</body></html>\n```\n"

	files := Extract(text)
	require.Equal(t, types.FileMapping{"file_1.txt": "<html><body>hi</body></html>"}, files)
}

func TestExtractNothingRecognized(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   \n\t  "))
	assert.Empty(t, Extract("Sorry, I cannot generate that website."))
}
