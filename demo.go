package main

// demoLog is played when no register log is given. Roughly a quarter of a
// second per note.
const demoLog = `
# enable pulse 1, pulse 2, triangle and noise
0 $4015 $0F
0 $4017 $40

# pulse 1: duty 50%, halted length, constant volume 8
0 $4000 $B8
0 $4001 $00
0 $4002 $FD
0 $4003 $08

# triangle A3 held by the linear counter
0 $4008 $FF
0 $400A $FD
0 $400B $08

# noise hit with a decaying envelope
0 $400C $04
0 $400E $03
0 $400F $08

447443 $4002 $D5
447443 $400C $04
447443 $400F $08

894886 $4002 $A9
894886 $4004 $76
894886 $4005 $9A
894886 $4006 $00
894886 $4007 $09

1342329 $4002 $D5
1342329 $4015 r

1789772 $4015 $00
`
