package assemble

import "strings"

// composeRow builds a fixed-width row of the given width with text segments
// placed at byte offsets.
func composeRow(width int, segs map[int]string) string {
	b := []byte(strings.Repeat(" ", width))
	for at, text := range segs {
		copy(b[at:], text)
	}
	return string(b)
}

const aptLayout = `
                        LANDING FACILITY RECORD LAYOUT

*
L AN 0003 00001  NONE
L AN 0011 00004  DLID
L AN 0013 00015  E5
L AN 0004 00028  E7
L AN 0020 00032  E10
L AN 0016 00052  A1
L AN 0002 00068  A4
L AN 0002 00070  A10
L AN 0014 00072  A19
L AN 0015 00086  A20
R  N 0005 00101  A21
L AN 0004 00106  E146
L AN 0004 00110  A86
L AN 0001 00114  A85
L AN 0007 00115  A82
R  N 0003 00122  A90
*
L AN 0003 00001  NONE
L AN 0011 00004  DLID
L AN 0007 00015  A30
L AN 0005 00022  A31
L AN 0004 00027  A32
L AN 0012 00031  A33
L AN 0009 00043  A35
*
L AN 0003 00001  NONE
L AN 0011 00004  DLID
L AN 0013 00015  A110
L AN 0060 00028  A110/T
`

const affLayout = `
*
L AN 0004 00001  NONE
L AN 0004 00005  DLID
L AN 0020 00009  AFF2
L AN 0016 00029  AFF3
L AN 0005 00045  AFF4
L AN 0014 00050  AFF5
L AN 0015 00064  AFF6
*
L AN 0004 00001  NONE
L AN 0004 00005  DLID
L AN 0016 00009  AFF3
L AN 0005 00025  AFF4
R  N 0002 00030  AFF11
L AN 0060 00032  AFF12
*
L AN 0004 00001  NONE
L AN 0004 00005  DLID
L AN 0016 00009  AFF3
L AN 0005 00025  AFF4
L AN 0007 00030  AFF14
L AN 0008 00037  AFF15
L AN 0011 00045  AFF16
*
L AN 0004 00001  NONE
L AN 0004 00005  DLID
L AN 0016 00009  AFF3
L AN 0005 00025  AFF4
L AN 0007 00030  AFF14
R  N 0002 00037  AFF19
L AN 0060 00039  AFF20
`

const fssLayout = `
*
L AN 0005 00001  DLID
L AN 0020 00006  F2
L AN 0010 00026  F4
L AN 0011 00036  F5
L AN 0014 00047  F8
L AN 0015 00061  F9
L AN 0040 00076  F17
*
L AN 0005 00001  DLID
L AN 0015 00006  F27
L AN 0007 00021  F28
`
