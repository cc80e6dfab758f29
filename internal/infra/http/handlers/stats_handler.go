package handlers

import (
	"net/http"

	"github.com/floobyte/site-api/internal/entity"
)

// StatsHandler aggregates the dashboard counters. Counting in memory over
// the full lists keeps the numbers consistent with what the admin tables
// show, and the tables are small.
type StatsHandler struct {
	Posts    entity.PostRepository
	Projects entity.ProjectRepository
	Services entity.ServiceRepository
	Messages entity.MessageRepository
	Careers  entity.CareerRepository
}

func NewStatsHandler(
	posts entity.PostRepository,
	projects entity.ProjectRepository,
	services entity.ServiceRepository,
	messages entity.MessageRepository,
	careers entity.CareerRepository,
) *StatsHandler {
	return &StatsHandler{
		Posts:    posts,
		Projects: projects,
		Services: services,
		Messages: messages,
		Careers:  careers,
	}
}

func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.Posts.List(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	projects, err := h.Projects.List(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	services, err := h.Services.List(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	messages, err := h.Messages.List(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	careers, err := h.Careers.List(ctx)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}

	published, drafts := 0, 0
	for _, p := range posts {
		switch p.Status {
		case "Published":
			published++
		case "Draft":
			drafts++
		}
	}
	unread := 0
	for _, m := range messages {
		if !m.IsRead {
			unread++
		}
	}
	open := 0
	for _, c := range careers {
		if c.Status == "Open" {
			open++
		}
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"totalPosts":     len(posts),
		"publishedPosts": published,
		"draftPosts":     drafts,
		"totalProjects":  len(projects),
		"totalServices":  len(services),
		"totalMessages":  len(messages),
		"unreadMessages": unread,
		"totalCareers":   len(careers),
		"openCareers":    open,
	})
}
