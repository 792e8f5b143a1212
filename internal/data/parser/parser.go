package parser

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/perfwatch/quicktrace/internal/core/model"
	"github.com/perfwatch/quicktrace/internal/util"
)

// Parser reads exported monitoring payloads: whole-trace JSON
// documents and line-delimited event streams.
type Parser struct {
	mu    sync.Mutex
	cache map[string]*model.TracePayload
}

// NewParser creates a new Parser instance.
func NewParser() *Parser {
	return &Parser{
		cache: make(map[string]*model.TracePayload),
	}
}

// ParseTraceFile parses a trace payload document. Parsed payloads are
// cached per path; watch mode invalidates through Forget.
func (p *Parser) ParseTraceFile(path string) (*model.TracePayload, error) {
	p.mu.Lock()
	if cached, ok := p.cache[path]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Start parsing trace payload: %s", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var payload model.TracePayload
	if err := sonic.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("malformed trace payload %s: %w", path, err)
	}

	p.mu.Lock()
	p.cache[path] = &payload
	p.mu.Unlock()

	return &payload, nil
}

// Forget drops the cached payload for a path after the file changed on
// disk.
func (p *Parser) Forget(path string) {
	p.mu.Lock()
	delete(p.cache, path)
	p.mu.Unlock()
}

// ParseEventsFile parses a line-delimited event stream. Invalid lines
// are skipped with a debug log rather than failing the file.
func (p *Parser) ParseEventsFile(path string) ([]model.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var events []model.Event
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		var ev model.Event
		if err := sonic.Unmarshal(scanner.Bytes(), &ev); err != nil {
			util.LogDebug(fmt.Sprintf("Skip invalid JSON line %s:%d - %v", path, lineCount, err))
			continue
		}
		events = append(events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
