package constants_test

import (
	"fmt"

	"github.com/agentstation/chanmap/pkg/constants"
)

// Example demonstrates the channel numbering policy
func Example() {
	location := 0
	fmt.Printf("location %d -> serial %d\n", location, location+constants.KeyOffset)
	fmt.Printf("fresh table slots: %d..%d\n", constants.FirstKey, constants.TableSlots)
	// Output:
	// location 0 -> serial 101
	// fresh table slots: 1..999
}

// Example_permissions demonstrates file permission constants
func Example_permissions() {
	fmt.Printf("dirs %o, files %o\n", constants.DirPermissions, constants.FilePermissions)
	// Output:
	// dirs 755, files 644
}
