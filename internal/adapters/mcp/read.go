package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// Deps bundles what the tool handlers need
type Deps struct {
	Store    ports.VaultStore
	Index    ports.EntityIndex
	Settings config.Settings
}

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(listTasksTool(), listTasksHandler(deps))
	s.AddTool(readTaskTool(), readTaskHandler(deps))
	s.AddTool(listProjectsTool(), listEntitiesHandler(deps, domain.EntityProject))
	s.AddTool(listAreasTool(), listEntitiesHandler(deps, domain.EntityArea))
}

// --- list_tasks ---

func listTasksTool() mcp.Tool {
	return mcp.NewTool("list_tasks",
		mcp.WithDescription("List tasks from the vault index. Optional filters narrow by status, category or project."),
		mcp.WithString("status",
			mcp.Description("Only tasks with this status (e.g. Backlog, Todo, In progress, Done)"),
		),
		mcp.WithString("category",
			mcp.Description("Only tasks with this category (e.g. Bug, Feature)"),
		),
		mcp.WithString("project",
			mcp.Description("Only tasks belonging to this project"),
		),
	)
}

func listTasksHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		status := req.GetString("status", "")
		category := req.GetString("category", "")
		project := req.GetString("project", "")

		tasks, err := deps.Index.ListEntities(domain.EntityTask)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		count := 0
		for _, t := range tasks {
			if status != "" && t.Status != status {
				continue
			}
			if category != "" && t.Category != category {
				continue
			}
			if project != "" && t.Project != project {
				continue
			}
			fmt.Fprintf(&sb, "%s\n", formatTask(t))
			count++
		}
		if count == 0 {
			return mcp.NewToolResultText("No tasks found."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_task ---

func readTaskTool() mcp.Tool {
	return mcp.NewTool("read_task",
		mcp.WithDescription("Read the full content of a task file by its vault-relative path."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path (e.g. Tasks/Fix login.md)"),
			mcp.Required(),
		),
	)
}

func readTaskHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		content, err := deps.Store.Read(path)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- list_projects / list_areas ---

func listProjectsTool() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("List all projects known to the vault index."),
	)
}

func listAreasTool() mcp.Tool {
	return mcp.NewTool("list_areas",
		mcp.WithDescription("List all areas known to the vault index."),
	)
}

func listEntitiesHandler(deps Deps, kind domain.EntityKind) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entities, err := deps.Index.ListEntities(kind)
		if err != nil {
			return toolError(err)
		}
		if len(entities) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}

		var sb strings.Builder
		for _, e := range entities {
			fmt.Fprintf(&sb, "%s  (%s)\n", e.Name(), e.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatTask(t domain.Entity) string {
	var parts []string
	parts = append(parts, t.Path)
	if t.Status != "" {
		parts = append(parts, "status="+t.Status)
	}
	if t.Category != "" {
		parts = append(parts, "category="+t.Category)
	}
	if t.Project != "" {
		parts = append(parts, "project="+t.Project)
	}
	if t.Done {
		parts = append(parts, "done")
	}
	return strings.Join(parts, "  ")
}
