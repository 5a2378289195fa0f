// Package remote implements a remote delegate bridge: a Sender that frames
// a delegate id plus arguments across a Transport, and a Receiver that
// registers itself under an id and decodes an inbound frame back into an
// invocation.
package remote
