package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

type employeeInput struct {
	EmployeeID string `json:"employee_id" jsonschema_description:"Employee identifier, e.g. E001."`
}

type applyLeaveInput struct {
	EmployeeID string   `json:"employee_id" jsonschema_description:"Employee identifier, e.g. E001."`
	LeaveDates []string `json:"leave_dates" jsonschema_description:"Dates to book, formatted YYYY-MM-DD."`
}

// generateSchema derives an inline JSON Schema object from T.
func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	raw, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		panic(fmt.Sprintf("reflect schema: %v", err))
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		panic(fmt.Sprintf("decode schema: %v", err))
	}
	delete(schema, "$schema")
	delete(schema, "$id")
	return schema
}

func registerTools(server *mcpsdk.Server, book *ledger) {
	server.AddTool(&mcpsdk.Tool{
		Name:        "get_leave_balance",
		Description: "Get the remaining leave days for an employee.",
		InputSchema: generateSchema[employeeInput](),
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var in employeeInput
		if err := decodeArguments(req, &in); err != nil {
			return errorResult(err), nil
		}
		balance, err := book.Balance(in.EmployeeID)
		if err != nil {
			return errorResult(err), nil
		}
		return textResult(fmt.Sprintf("%s has %d leave days remaining.", in.EmployeeID, balance)), nil
	})

	server.AddTool(&mcpsdk.Tool{
		Name:        "apply_leave",
		Description: "Apply leave for specific dates and deduct them from the balance.",
		InputSchema: generateSchema[applyLeaveInput](),
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var in applyLeaveInput
		if err := decodeArguments(req, &in); err != nil {
			return errorResult(err), nil
		}
		remaining, err := book.Apply(in.EmployeeID, in.LeaveDates)
		if err != nil {
			return errorResult(err), nil
		}
		return textResult(fmt.Sprintf("Leave applied for %d day(s). Remaining balance: %d.", len(in.LeaveDates), remaining)), nil
	})

	server.AddTool(&mcpsdk.Tool{
		Name:        "get_leave_history",
		Description: "List the leave dates already booked by an employee.",
		InputSchema: generateSchema[employeeInput](),
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var in employeeInput
		if err := decodeArguments(req, &in); err != nil {
			return errorResult(err), nil
		}
		history, err := book.History(in.EmployeeID)
		if err != nil {
			return errorResult(err), nil
		}
		if len(history) == 0 {
			return textResult(fmt.Sprintf("No leaves taken by %s.", in.EmployeeID)), nil
		}
		return textResult(fmt.Sprintf("Leave history for %s: %s", in.EmployeeID, strings.Join(history, ", "))), nil
	})
}

func decodeArguments(req *mcpsdk.CallToolRequest, dst any) error {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return fmt.Errorf("missing arguments")
	}
	if err := json.Unmarshal(req.Params.Arguments, dst); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}}}
}

func errorResult(err error) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
	}
}
