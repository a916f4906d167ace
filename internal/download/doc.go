package download

// Package download tracks the entries shown in the downloads panel. There is
// no transfer pipeline behind it (the rendering engine is stubbed), so the
// service only manages the list and notifies the UI about changes.
