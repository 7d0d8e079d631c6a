// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package otelslog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
)

func ExampleHandler_WithAttrs() {
	var buf bytes.Buffer
	var h slog.Handler = NewHandler(slog.NewJSONHandler(&buf, &slog.HandlerOptions{}))
	h = h.WithAttrs([]slog.Attr{slog.String("source", "env")})

	logger := slog.New(h)
	logger.Warn("failed to map property value")

	var record struct {
		Message string `json:"msg"`
		Source  string `json:"source"`
	}
	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(record.Message)
	fmt.Print(record.Source)
	// Output: failed to map property value
	// env
}
