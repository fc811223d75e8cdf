// Package llmutils holds small helpers for JSON that crosses the LLM
// boundary: tolerant cleanup of model-produced input and stable encoding of
// tool output.
package llmutils

import (
	"bytes"
	"encoding/json"
)

// CleanJSON trims any prose an LLM wrapped around a JSON document, e.g.
// "Sure, here you go: {...}" or fenced ```json blocks, by cutting to the
// outermost brace or bracket pair. Input without braces is returned as is.
func CleanJSON(bs []byte) []byte {
	start := indexFirst(bs, '{', '[')
	if start == -1 {
		return bs
	}
	end := indexLast(bs, '}', ']')
	if end == -1 || end < start {
		return bs
	}
	return bs[start : end+1]
}

func indexFirst(bs []byte, a, b byte) int {
	ia := bytes.IndexByte(bs, a)
	ib := bytes.IndexByte(bs, b)
	if ia == -1 {
		return ib
	}
	if ib == -1 {
		return ia
	}
	return min(ia, ib)
}

func indexLast(bs []byte, a, b byte) int {
	ia := bytes.LastIndexByte(bs, a)
	ib := bytes.LastIndexByte(bs, b)
	return max(ia, ib)
}

// ToJSON encodes v compactly, for tool results fed back to a model.
func ToJSON(v any) string {
	bs, _ := json.Marshal(v)
	return string(bs)
}

// ToJSONIndent encodes v with tab indentation, for prompts and logs.
func ToJSONIndent(v any) string {
	bs, _ := json.MarshalIndent(v, "", "\t")
	return string(bs)
}

// BackticksJSON wraps a JSON string in a fenced code block.
func BackticksJSON(js string) string {
	return "```json\n" + js + "\n```\n"
}
