package cmd

import (
	"fmt"

	"github.com/leohubert/bunny-stream-go/internal/export"
	"github.com/leohubert/bunny-stream-go/internal/output"
	"github.com/leohubert/bunny-stream-go/pkg/bunny"
)

// asObject narrows a response to an object, which every documented
// call of ours returns.
func asObject(result bunny.JSON) map[string]any {
	obj, _ := result.(map[string]any)
	return obj
}

// items pulls the entries out of a paginated listing response.
func items(result bunny.JSON) []map[string]any {
	list, _ := asObject(result)["items"].([]any)
	entries := make([]map[string]any, 0, len(list))
	for _, entry := range list {
		if obj, ok := entry.(map[string]any); ok {
			entries = append(entries, obj)
		}
	}
	return entries
}

// deliver prints the result, or exports it as JSON when outPath is
// set.
func deliver(printer *output.Printer, outPath string, result bunny.JSON) error {
	if outPath == "" {
		printer.Object(result)
		return nil
	}
	if err := export.WriteJSON(outPath, result); err != nil {
		return err
	}
	printer.Success("written to %s", outPath)
	return nil
}

// takeArg pops the next positional argument.
func takeArg(args []string, name string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("missing %s argument", name)
	}
	return args[0], args[1:], nil
}
