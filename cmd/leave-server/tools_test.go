package main

import (
	"context"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func connectLeaveServer(t *testing.T) *mcpsdk.ClientSession {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()

	serverSession, err := newServer(newLedger()).Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		_ = serverSession.Close()
		cancel()
	})
	return session
}

func callText(t *testing.T, session *mcpsdk.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text, res.IsError
}

func TestGenerateSchema(t *testing.T) {
	schema := generateSchema[applyLeaveInput]()
	require.Equal(t, "object", schema["type"])
	require.NotContains(t, schema, "$schema")

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, props, "employee_id")
	require.Contains(t, props, "leave_dates")
	require.ElementsMatch(t, []any{"employee_id", "leave_dates"}, schema["required"])
}

func TestLeaveServerListsTools(t *testing.T) {
	session := connectLeaveServer(t)

	var names []string
	for tool, err := range session.Tools(context.Background(), nil) {
		require.NoError(t, err)
		names = append(names, tool.Name)
	}
	require.ElementsMatch(t, []string{"get_leave_balance", "apply_leave", "get_leave_history"}, names)
}

func TestLeaveServerBalanceAndApply(t *testing.T) {
	session := connectLeaveServer(t)

	text, isErr := callText(t, session, "get_leave_balance", map[string]any{"employee_id": "E001"})
	require.False(t, isErr)
	require.Equal(t, "E001 has 18 leave days remaining.", text)

	text, isErr = callText(t, session, "apply_leave", map[string]any{
		"employee_id": "E001",
		"leave_dates": []string{"2025-05-01", "2025-05-02"},
	})
	require.False(t, isErr)
	require.Equal(t, "Leave applied for 2 day(s). Remaining balance: 16.", text)

	text, isErr = callText(t, session, "get_leave_history", map[string]any{"employee_id": "E001"})
	require.False(t, isErr)
	require.Equal(t, "Leave history for E001: 2024-12-25, 2025-01-01, 2025-05-01, 2025-05-02", text)
}

func TestLeaveServerReportsToolErrors(t *testing.T) {
	session := connectLeaveServer(t)

	text, isErr := callText(t, session, "get_leave_balance", map[string]any{"employee_id": "E404"})
	require.True(t, isErr)
	require.Contains(t, text, "employee not found")

	text, isErr = callText(t, session, "get_leave_history", map[string]any{"employee_id": "E002"})
	require.False(t, isErr)
	require.Equal(t, "No leaves taken by E002.", text)
}
