package testsCommon

import (
	"context"
	"time"

	"github.com/kuza-analytics/metrics-gateway/services/gateway/common"
)

// MessageStoreStub -
type MessageStoreStub struct {
	SaveMessageHandler func(ctx context.Context, code int, title string, body string, createdAt time.Time) (*common.MessageRecord, error)
	GetMessagesHandler func(ctx context.Context) ([]common.MessageRecord, error)
	CloseHandler       func() error
}

// SaveMessage -
func (stub *MessageStoreStub) SaveMessage(ctx context.Context, code int, title string, body string, createdAt time.Time) (*common.MessageRecord, error) {
	if stub.SaveMessageHandler != nil {
		return stub.SaveMessageHandler(ctx, code, title, body, createdAt)
	}

	return &common.MessageRecord{
		Code:      code,
		Title:     title,
		Body:      body,
		CreatedAt: createdAt,
	}, nil
}

// GetMessages -
func (stub *MessageStoreStub) GetMessages(ctx context.Context) ([]common.MessageRecord, error) {
	if stub.GetMessagesHandler != nil {
		return stub.GetMessagesHandler(ctx)
	}

	return make([]common.MessageRecord, 0), nil
}

// Close -
func (stub *MessageStoreStub) Close() error {
	if stub.CloseHandler != nil {
		return stub.CloseHandler()
	}

	return nil
}

// IsInterfaceNil -
func (stub *MessageStoreStub) IsInterfaceNil() bool {
	return stub == nil
}
