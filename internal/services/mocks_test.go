package services

import (
	"context"

	"github.com/vvka-141/seedscan/pkg/seedscan"
)

type mockConnector struct {
	conn  seedscan.DBConn
	err   error
	calls int
}

func (m *mockConnector) Connect(_ context.Context) (seedscan.DBConn, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.conn, nil
}

// factoryFor returns a connector factory that always hands out c.
func factoryFor(c *mockConnector) func(*seedscan.ConnectionConfig) (seedscan.Connector, error) {
	return func(*seedscan.ConnectionConfig) (seedscan.Connector, error) {
		return c, nil
	}
}

type sequenceText struct {
	n int
}

func (g *sequenceText) Name() string {
	g.n++
	return "Name"
}

func (g *sequenceText) Sentence() string { return "normal text" }

func (g *sequenceText) Paragraph() string { return "success text" }

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Verbose(string, ...interface{}) {}

func (l *recordingLogger) Info(string, ...interface{}) {}

func (l *recordingLogger) Error(format string, _ ...interface{}) {
	l.errors = append(l.errors, format)
}
