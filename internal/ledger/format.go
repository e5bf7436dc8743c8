package ledger

import (
	"fmt"
	"time"

	"github.com/cleared-dev/buy/internal/model"
)

// Currency is printed directly before the amount on the posting line.
const Currency = "₪"

// Format renders one transaction block. The date is the civil date of now in
// now's own location; callers pick the zone.
//
//	<blank>
//	2025/01/15 Keter Habasar
//	    expenses:food  ₪100
//	    liability:credit card:fibi:shufersal
func Format(category model.Category, amount model.Amount, now time.Time) string {
	accts := category.Accounts()
	return fmt.Sprintf("\n%d/%02d/%02d %s\n    %s  %s%s\n    %s\n",
		now.Year(), int(now.Month()), now.Day(),
		category.Label(),
		accts.Destination, Currency, amount,
		accts.Source,
	)
}
