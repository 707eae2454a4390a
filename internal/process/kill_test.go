package process

// Notes:
// - KillTree is only called with PIDs that cannot exist. Killing real
//   processes is covered by TestRun_CancelKillsChild on Unix.

import "testing"

func TestKillTree_InvalidPID(t *testing.T) {
	t.Parallel()

	KillTree(999999999)
	KillTree(0)
	KillTree(-1)
}
