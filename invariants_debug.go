//go:build dequedebug

package deque

const debugInvariants = true
