package chat_test

import (
	"context"
	"testing"

	model "github.com/mindscan-ai/mindscan/backend/internal/model/chat"
	chat "github.com/mindscan-ai/mindscan/backend/internal/service/chat"
)

func TestServiceGetSession(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, err := svc.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}

	if got.ID != session.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, session.ID)
	}
}

func TestServiceGetSessionNotFound(t *testing.T) {
	svc := chat.NewService()

	if _, err := svc.GetSession(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for missing session")
	}
}

func TestAppendTurnKeepsAlternation(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	for i := 0; i < 2; i++ {
		user := model.Message{Role: model.RoleUser, Content: "hello"}
		assistant := model.Message{Role: model.RoleAssistant, Content: "hi there"}
		if err := svc.AppendTurn(ctx, session.ID, &user, &assistant); err != nil {
			t.Fatalf("AppendTurn err: %v", err)
		}
	}

	history, err := svc.History(ctx, session.ID)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(history))
	}
	want := []model.Role{model.RoleUser, model.RoleAssistant, model.RoleUser, model.RoleAssistant}
	for i, msg := range history {
		if msg.Role != want[i] {
			t.Fatalf("message %d has role %s, want %s", i, msg.Role, want[i])
		}
		if msg.ID == "" || msg.SessionID != session.ID {
			t.Fatalf("message %d missing identifiers: %+v", i, msg)
		}
	}
}

func TestAppendTurnRejectsBrokenPair(t *testing.T) {
	svc := chat.NewService()
	ctx := context.Background()

	session, err := svc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	user := model.Message{Role: model.RoleUser, Content: "hello"}
	alsoUser := model.Message{Role: model.RoleUser, Content: "hello again"}
	if err := svc.AppendTurn(ctx, session.ID, &user, &alsoUser); err == nil {
		t.Fatal("expected error for user/user pair")
	}

	history, err := svc.History(ctx, session.ID)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("broken turn must not be partially applied, got %d messages", len(history))
	}
}
