package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ionut-t/hjkl/core"
)

// indent uses spaces rather than a tab so every rune in the buffer is one
// terminal cell wide.
const indent = "    "

// Vocabulary for the generated playground code. The output only has to look
// like plausible Go; it almost certainly will not compile.

var fnNames = []string{
	"process", "calculate", "update", "render", "initialize", "finalize",
	"handleEvent", "loadData", "saveData", "computeResult", "transform",
	"validate", "parseInput", "generateReport", "sendRequest",
	"receiveResponse",
}

var varNames = []string{
	"data", "result", "temp", "index", "value", "count", "item", "buffer",
	"config", "status", "input", "output", "flag", "message", "response",
	"request", "user", "session", "state",
}

var typeNames = []string{
	"int", "int64", "float64", "string", "[]byte", "map[string]string",
	"*string", "error", "bool", "[]string", "map[int]struct{}", "any",
	"chan int",
}

var structNames = []string{
	"Config", "User", "Request", "Response", "Session", "State", "Data",
	"Message", "Event", "Handler", "Manager", "Service", "Client",
}

var importLines = []string{
	`"fmt"`,
	`"os"`,
	`"io"`,
	`"strings"`,
	`"time"`,
	`"context"`,
	`"errors"`,
	`"sync"`,
	`"net/http"`,
	`"encoding/json"`,
	`"log/slog"`,
	`"math/rand"`,
	`"path/filepath"`,
	`"bufio"`,
	`"bytes"`,
	`"sort"`,
}

// Generate produces a random playground buffer shaped like a Go file:
// imports, a couple of struct definitions and a main function filled with
// statement blocks.
func Generate(rng *rand.Rand) *core.Buffer {
	var lines []string

	lines = append(lines, "package main")
	lines = append(lines, "")

	lines = append(lines, "import (")
	importCount := 3 + rng.Intn(4)
	seen := make(map[string]bool)
	for i := 0; i < importCount; i++ {
		imp := importLines[rng.Intn(len(importLines))]
		if seen[imp] {
			continue
		}
		seen[imp] = true
		lines = append(lines, indent+imp)
	}
	lines = append(lines, ")")
	lines = append(lines, "")

	structCount := 1 + rng.Intn(3)
	for i := 0; i < structCount; i++ {
		lines = append(lines, randomStructDef(rng)...)
		lines = append(lines, "")
	}

	lines = append(lines, "func main() {")

	blockCount := 10 + rng.Intn(10)
	for i := 0; i < blockCount; i++ {
		switch kind := 1 + rng.Intn(10); {
		case kind == 1:
			for _, l := range randomSwitchBlock(rng) {
				lines = append(lines, indent+l)
			}
		case kind == 2:
			for _, l := range randomRangeLoop(rng) {
				lines = append(lines, indent+l)
			}
		case kind == 3:
			for _, l := range randomForLoop(rng) {
				lines = append(lines, indent+l)
			}
		case kind <= 7:
			lines = append(lines, indent+randomCall(rng))
		default:
			lines = append(lines, indent+randomAssign(rng))
		}

		if rng.Float64() < 0.7 {
			lines = append(lines, "")
		}
	}

	lines = append(lines, "}")

	return core.NewBuffer(lines)
}

func randomStructDef(rng *rand.Rand) []string {
	lines := []string{fmt.Sprintf("type %s struct {", pick(rng, structNames))}

	fieldCount := 2 + rng.Intn(3)
	for i := 0; i < fieldCount; i++ {
		lines = append(lines, fmt.Sprintf(indent+"%s %s", pick(rng, varNames), pick(rng, typeNames)))
	}

	return append(lines, "}")
}

func randomSwitchBlock(rng *rand.Rand) []string {
	lines := []string{"switch input {"}

	arms := 2 + rng.Intn(3)
	for i := 0; i < arms; i++ {
		lines = append(lines, fmt.Sprintf("case %q:", pick(rng, varNames)))
		lines = append(lines, indent+randomCall(rng))
	}
	lines = append(lines, "default:")
	lines = append(lines, indent+randomCall(rng))

	return append(lines, "}")
}

func randomRangeLoop(rng *rand.Rand) []string {
	lines := []string{
		fmt.Sprintf("for _, %s := range %s {", pick(rng, varNames), pick(rng, varNames)),
	}

	stmts := 1 + rng.Intn(3)
	for i := 0; i < stmts; i++ {
		lines = append(lines, indent+randomCall(rng))
	}

	return append(lines, "}")
}

func randomForLoop(rng *rand.Rand) []string {
	lines := []string{
		fmt.Sprintf("for %s.%s() {", pick(rng, varNames), pick(rng, fnNames)),
	}

	stmts := 1 + rng.Intn(4)
	for i := 0; i < stmts; i++ {
		if rng.Float64() < 0.5 {
			lines = append(lines, indent+randomAssign(rng))
		} else {
			lines = append(lines, indent+randomCall(rng))
		}
	}
	lines = append(lines, indent+randomCall(rng))

	return append(lines, "}")
}

func randomAssign(rng *rand.Rand) string {
	return fmt.Sprintf("%s := %s.%s()", pick(rng, varNames), pick(rng, varNames), pick(rng, fnNames))
}

func randomCall(rng *rand.Rand) string {
	args := make([]string, rng.Intn(4))
	for i := range args {
		args[i] = pick(rng, varNames)
	}
	return fmt.Sprintf("%s(%s)", pick(rng, fnNames), strings.Join(args, ", "))
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.Intn(len(from))]
}
