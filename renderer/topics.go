package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
)

// TopicsMarkdown lists the documentation topics.
func TopicsMarkdown(topics []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Topics")
	doc.PlainText("Show a topic with " + md.Code("rocksling topic <topic>") + ", or all of them with " + md.Code(`rocksling topic "*"`) + ".")
	doc.BulletList(topics...)
	return doc.String()
}
