package service

import (
	"context"
	"time"

	"github.com/lmartens/dayflow/internal/docsource"
	"github.com/lmartens/dayflow/internal/domain"
	"github.com/lmartens/dayflow/internal/store"
)

type fakeFetcher struct {
	docs      map[string]docsource.Document
	errs      map[string]error
	refreshes []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, id string) (docsource.Document, error) {
	return f.Refresh(ctx, id)
}

func (f *fakeFetcher) Refresh(_ context.Context, id string) (docsource.Document, error) {
	f.refreshes = append(f.refreshes, id)
	if err, ok := f.errs[id]; ok {
		return docsource.Document{}, err
	}
	return f.docs[id], nil
}

type fakeSnapshots struct {
	projects []store.Project
	replaces int
	loadErr  error
}

func (f *fakeSnapshots) Replace(_ context.Context, projects []store.Project) error {
	f.projects = projects
	f.replaces++
	return nil
}

func (f *fakeSnapshots) Load(context.Context) ([]store.Project, error) {
	return f.projects, f.loadErr
}

func taskDoc(id, title string, taskLines ...string) docsource.Document {
	paragraphs := []docsource.Paragraph{{
		Text:   docsource.TaskListIdentifier,
		Bullet: &docsource.Bullet{ListID: "list-1"},
	}}
	for _, line := range taskLines {
		paragraphs = append(paragraphs, docsource.Paragraph{
			Text:   line,
			Bullet: &docsource.Bullet{ListID: "list-1"},
		})
	}
	return docsource.Document{
		ID:    id,
		Title: title,
		Tabs: []docsource.Tab{{
			Title:      "work",
			TaskListID: "list-1",
			Paragraphs: paragraphs,
		}},
	}
}

func docMap(docs ...docsource.Document) map[string]docsource.Document {
	out := make(map[string]docsource.Document, len(docs))
	for _, d := range docs {
		out[d.ID] = d
	}
	return out
}

func struckTaskLine(text string) docsource.Paragraph {
	return docsource.Paragraph{
		Text:   text,
		Bullet: &docsource.Bullet{ListID: "list-1", Strikethrough: true},
	}
}

func storedTask(id, title string, d time.Duration) domain.Task {
	return domain.Task{
		ID:                id,
		Title:             title,
		EstimatedDuration: d,
		Source:            domain.SourceGoogleDocs,
	}
}
