package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tasksync/internal/application/commands"
	"tasksync/internal/domain"
)

// RegisterWriteTools adds all mutating vault tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(createTaskTool(), createTaskHandler(deps))
	s.AddTool(refreshTool(), refreshHandler(deps))
	s.AddTool(syncBasesTool(), syncBasesHandler(deps))
	s.AddTool(promoteTodoTool(), promoteTodoHandler(deps))
}

// --- create_task ---

func createTaskTool() mcp.Tool {
	return mcp.NewTool("create_task",
		mcp.WithDescription("Create a new task, project or area file from its template with canonical front matter."),
		mcp.WithString("title",
			mcp.Description("Title of the new entity; also becomes the file name"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Entity kind: Task (default), Project or Area"),
		),
	)
}

func createTaskHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		title := req.GetString("title", "")
		kindStr := req.GetString("kind", "Task")

		kind, err := domain.ParseEntityKind(kindStr)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewNewEntityCommand(deps.Store, deps.Settings, kind, title)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- refresh ---

func refreshTool() mcp.Tool {
	return mcp.NewTool("refresh",
		mcp.WithDescription("Reconcile front matter against the canonical schema. Without a path refreshes the whole folder for the given kind; legacy Type values are migrated to Category."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path of a single file to refresh. Omit to refresh the whole folder."),
		),
		mcp.WithString("kind",
			mcp.Description("Entity kind: Task (default), Project or Area"),
		),
	)
}

func refreshHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		kindStr := req.GetString("kind", "Task")

		kind, err := domain.ParseEntityKind(kindStr)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewRefreshCommand(deps.Store, deps.Settings, kind, path)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sync_bases ---

func syncBasesTool() mcp.Tool {
	return mcp.NewTool("sync_bases",
		mcp.WithDescription("Regenerate the global base file plus one base per project and area, reflecting the configured task categories."),
	)
}

func syncBasesHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSyncBasesCommand(deps.Store, deps.Index, deps.Settings)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- promote_todo ---

func promoteTodoTool() mcp.Tool {
	return mcp.NewTool("promote_todo",
		mcp.WithDescription("Promote a `- [ ]` checklist line in a note to a standalone task file, replacing the line with a link."),
		mcp.WithString("source_path",
			mcp.Description("Vault-relative path of the note containing the todo"),
			mcp.Required(),
		),
		mcp.WithString("todo_text",
			mcp.Description("Exact text of the todo line, without the checkbox prefix"),
			mcp.Required(),
		),
	)
}

func promoteTodoHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sourcePath := req.GetString("source_path", "")
		todoText := req.GetString("todo_text", "")

		cmd := commands.NewPromoteTodoCommand(deps.Store, deps.Settings, sourcePath, todoText)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
