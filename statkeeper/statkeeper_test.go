package statkeeper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStatHatStatKeeperNames(t *testing.T) {
	var got []string
	sk := &StatHatStatKeeper{
		ezKey: "key@example.com",
		post: func(name, ezKey string, count int) error {
			if ezKey != "key@example.com" || count != 1 {
				t.Errorf("post(%q, %q, %d)", name, ezKey, count)
			}
			got = append(got, name)
			return nil
		},
	}

	var k StatKeeper = sk
	k.RenderAttempt()
	k.RenderComplete()
	k.RenderFormatReject()
	k.RenderLoadFail()
	k.MojangRequestOK()
	k.MojangRequestFail()
	k.McRequestOK()
	k.McRequestFail()

	want := []string{
		"render start",
		"render complete",
		"render invalid format",
		"render load fail",
		"mojang request ok",
		"mojang request fail",
		"minecraft request ok",
		"minecraft request fail",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stat names mismatch (-want +got):\n%s", diff)
	}
}
