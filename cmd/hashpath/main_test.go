package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stdin  string
		pretty bool
		want   string
	}{
		{
			name: "arguments",
			args: []string{"#home", "#search?q=cats&page=2"},
			want: `{"route":"home","args":{}}` + "\n" +
				`{"route":"search","args":{"page":"2","q":"cats"}}` + "\n",
		},
		{
			name:  "stdin lines",
			stdin: "#item?flag\n\n",
			want: `{"route":"item","args":{"flag":""}}` + "\n" +
				`{"route":"","args":{}}` + "\n",
		},
		{
			name:   "pretty",
			args:   []string{"#a?x=1"},
			pretty: true,
			want:   "{\n  \"route\": \"a\",\n  \"args\": {\n    \"x\": \"1\"\n  }\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tt.args, strings.NewReader(tt.stdin), &out, tt.pretty); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
