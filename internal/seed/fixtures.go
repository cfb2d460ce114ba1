package seed

import "eventnft/internal/models"

// placeholderWallet stands in until the account links a real wallet.
const placeholderWallet = "0x0000000000000000000000000000000000000000"

// Users is the fixed list of test accounts the seeder provisions, in the
// order they are created and reported.
var Users = []models.SeedUser{
	{
		UID:           "admin_user_001",
		Email:         "admin@eventnft.app",
		Password:      "Admin123!",
		Name:          "Platform Admin",
		Role:          models.RoleAdmin,
		WalletAddress: placeholderWallet,
		Verified:      true,
	},
	{
		UID:           "merchant_user_001",
		Email:         "merchant@eventnft.app",
		Password:      "Merchant123!",
		Name:          "Test Merchant",
		Role:          models.RoleMerchant,
		BusinessName:  "EventNFT Test Events Co.",
		WalletAddress: placeholderWallet,
		Verified:      true,
		Approved:      true,
	},
	{
		UID:           "regular_user_001",
		Email:         "user@eventnft.app",
		Password:      "User123!",
		Name:          "Test User",
		Role:          models.RoleUser,
		WalletAddress: placeholderWallet,
		Verified:      true,
	},
}
