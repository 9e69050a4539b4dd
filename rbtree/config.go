package rbtree

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for rbtree instance.
//
// "capacity" (int64, default: 0)
//      Number of slots to pre-allocate. Zero starts the tree empty
//      and lets the arena grow on demand. Negative values are
//      invalid.
//
// "mincapacity" (int64, default: 8)
//      Floor for arena growth. The slot arrays never grow to fewer
//      slots than this.
//
// "memcapacity" (int64, default: free system memory)
//      Advisory bound on arena memory. Growing past it logs a
//      warning, it does not fail the operation.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	return s.Settings{
		"capacity":    int64(0),
		"mincapacity": int64(8),
		"memcapacity": int64(free),
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
