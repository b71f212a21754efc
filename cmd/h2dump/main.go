// Command h2dump connects to an HTTP/2 server, performs the connection
// preface handshake, and logs every frame it receives until the connection
// closes. It owns the socket and the read loop; everything else — frame
// decoding, HPACK — comes from github.com/kavuri/h2wire. There is no stream
// state machine here: that bookkeeping is explicitly an external
// collaborator's job (spec.md §1), and this binary is a dumb consumer, not
// a conforming HTTP/2 peer.
package main

import (
	"bufio"
	"flag"
	"log"
	"net"
	"os"

	h2wire "github.com/kavuri/h2wire"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "address of the HTTP/2 server to connect to")
	flag.Parse()

	logger := log.New(os.Stdout, "[h2dump] ", log.LstdFlags)

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		logger.Fatalf("dial %s: %v", *addr, err)
	}
	defer conn.Close()

	if err := h2wire.WritePreface(conn); err != nil {
		logger.Fatalf("write preface: %v", err)
	}

	st := h2wire.Settings{}
	enc := h2wire.AcquireHPACK()
	defer h2wire.ReleaseHPACK(enc)

	fr := h2wire.AcquireFrameHeader()
	defer h2wire.ReleaseFrameHeader(fr)
	fr.SetBody(&st)
	bw := bufio.NewWriter(conn)
	if _, err := h2wire.EncodeFrameHeader(fr, bw); err != nil {
		logger.Fatalf("write settings: %v", err)
	}
	if err := bw.Flush(); err != nil {
		logger.Fatalf("flush settings: %v", err)
	}

	br := bufio.NewReader(conn)
	for {
		frh := h2wire.AcquireFrameHeader()
		_, err := h2wire.DecodeFrameHeader(frh, br)
		if err != nil {
			h2wire.ReleaseFrameHeader(frh)
			logger.Printf("connection ended: %v", err)
			return
		}

		logger.Printf("frame type=%v stream=%d flags=%#x len=%d",
			frh.Type(), frh.Stream(), frh.Flags(), frh.Len())

		h2wire.ReleaseFrameHeader(frh)
	}
}
