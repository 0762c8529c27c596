package kafka

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdmin overrides the two admin calls EnsureTopics makes.
type fakeAdmin struct {
	sarama.ClusterAdmin
	topics    map[string]sarama.TopicDetail
	listErr   error
	createErr error
	created   map[string]*sarama.TopicDetail
}

func (f *fakeAdmin) ListTopics() (map[string]sarama.TopicDetail, error) {
	return f.topics, f.listErr
}

func (f *fakeAdmin) CreateTopic(topic string, detail *sarama.TopicDetail, _ bool) error {
	if f.created == nil {
		f.created = make(map[string]*sarama.TopicDetail)
	}
	f.created[topic] = detail
	return f.createErr
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("article-service")

	assert.Equal(t, "article-service", cfg.ClientID)
	assert.Equal(t, sarama.OffsetOldest, cfg.Consumer.Offsets.Initial)
	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	require.NoError(t, cfg.Validate())
}

func TestEnsureTopics(t *testing.T) {
	t.Run("creates only missing topics", func(t *testing.T) {
		admin := &fakeAdmin{topics: map[string]sarama.TopicDetail{"article-events": {}}}

		err := EnsureTopics(admin, []TopicSpec{
			{Name: "article-events", Partitions: 3},
			{Name: "article-events-dead-letter"},
		})

		require.NoError(t, err)
		require.Len(t, admin.created, 1)
		detail := admin.created["article-events-dead-letter"]
		require.NotNil(t, detail)
		assert.Equal(t, int32(1), detail.NumPartitions)
		assert.Equal(t, int16(1), detail.ReplicationFactor)
	})

	t.Run("tolerates topic created concurrently", func(t *testing.T) {
		admin := &fakeAdmin{
			topics:    map[string]sarama.TopicDetail{},
			createErr: &sarama.TopicError{Err: sarama.ErrTopicAlreadyExists},
		}

		err := EnsureTopics(admin, []TopicSpec{{Name: "article-events"}})

		assert.NoError(t, err)
	})

	t.Run("returns list error", func(t *testing.T) {
		admin := &fakeAdmin{listErr: errors.New("no brokers")}

		err := EnsureTopics(admin, []TopicSpec{{Name: "article-events"}})

		assert.Error(t, err)
	})

	t.Run("returns create error", func(t *testing.T) {
		admin := &fakeAdmin{topics: map[string]sarama.TopicDetail{}, createErr: errors.New("denied")}

		err := EnsureTopics(admin, []TopicSpec{{Name: "article-events"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create kafka topic article-events")
	})
}
