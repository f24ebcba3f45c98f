package notification

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	r.sent = append(r.sent, message)
	if r.err != nil {
		return "", r.err
	}

	return "projects/p/messages/1", nil
}

func TestSendToTopic(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	id, err := svc.SendToTopic(context.Background(), "user-u1", "Order update", "Order #ORDER_A is now ready!", map[string]string{"order_id": "ORDER_A"})

	require.NoError(t, err)
	assert.Equal(t, "projects/p/messages/1", id)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "user-u1", sender.sent[0].Topic)
	assert.Equal(t, "Order update", sender.sent[0].Notification.Title)
	assert.Equal(t, "ORDER_A", sender.sent[0].Data["order_id"])
}

func TestSendToTopic_Errors(t *testing.T) {
	svc := &firebaseService{client: &recordingSender{err: errors.New("quota exceeded")}}

	_, err := svc.SendToTopic(context.Background(), "", "t", "b", nil)
	require.Error(t, err)

	_, err = svc.SendToTopic(context.Background(), "user-u1", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
