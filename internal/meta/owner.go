package meta

import (
	"os/user"
	"strconv"
	"sync"
)

// Owner and group name lookups hit the OS user database, which is slow
// enough to matter on large listings. Results are memoized by numeric id
// for the lifetime of the process; entries are written once and shared
// read-only afterwards.
var ownerCache = struct {
	mu     sync.Mutex
	users  map[uint32]string
	groups map[uint32]string
}{
	users:  make(map[uint32]string),
	groups: make(map[uint32]string),
}

// resolveOwner returns the user and group names for the given numeric
// ids, falling back to the decimal id when the name cannot be resolved.
func resolveOwner(uid, gid uint32) (string, string) {
	ownerCache.mu.Lock()
	defer ownerCache.mu.Unlock()

	userName, ok := ownerCache.users[uid]
	if !ok {
		userName = lookupUser(uid)
		ownerCache.users[uid] = userName
	}

	groupName, ok := ownerCache.groups[gid]
	if !ok {
		groupName = lookupGroup(gid)
		ownerCache.groups[gid] = groupName
	}

	return userName, groupName
}

func lookupUser(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	u, err := user.LookupId(id)
	if err != nil {
		return id
	}
	return u.Username
}

func lookupGroup(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	g, err := user.LookupGroupId(id)
	if err != nil {
		return id
	}
	return g.Name
}
