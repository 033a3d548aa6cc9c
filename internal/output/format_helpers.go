package output

import "github.com/rpgo/taxhawk/pkg/rupee"

// FormatRupee formats a whole-rupee Amount with a currency prefix, reused by
// every formatter and unit tested in isolation.
func FormatRupee(amount rupee.Amount) string { return "₹" + amount.String() }
