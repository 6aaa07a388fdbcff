// Command benctl inspects, converts and verifies bencode documents and
// compares torrent file lists with directories on disk.
package main

func main() {
	execute()
}
