package main

import "os"

// exitFunc terminates the process. Tests replace it.
var exitFunc = os.Exit
