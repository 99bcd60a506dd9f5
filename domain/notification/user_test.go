package notification

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_Deliver_KeepsOrderAndDuplicates(t *testing.T) {
	req := require.New(t)
	user := NewUser("alice")

	user.Deliver("m1")
	user.Deliver("m2")
	user.Deliver("m1")

	req.Equal([]string{"m1", "m2", "m1"}, user.Inbox)
	req.Equal(UserView{Name: "alice", Subscribed: false}, user.View())
}
