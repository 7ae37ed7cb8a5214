package domain

// Keys written by the legacy client into its local key/value storage.
const (
	KeyUserName   = "userName"
	KeyUserEmail  = "userEmail"
	KeyUserMobile = "userMobile"

	KeyAddresses      = "addresses"
	KeyDefaultAddress = "defaultAddress"

	KeyMorningDelivery     = "morningDelivery"
	KeyEveningDelivery     = "eveningDelivery"
	KeyMorningMilkType     = "morningMilkType"
	KeyMorningQuantity     = "morningQuantity"
	KeyMorningFrequency    = "morningFrequency"
	KeyMorningTimeSlot     = "morningTimeSlot"
	KeyMorningDays         = "morningDays"
	KeyEveningMilkType     = "eveningMilkType"
	KeyEveningQuantity     = "eveningQuantity"
	KeyEveningFrequency    = "eveningFrequency"
	KeyEveningTimeSlot     = "eveningTimeSlot"
	KeyEveningDays         = "eveningDays"
	KeySubscriptionAddress = "subscriptionAddress"
)

func MigratablePreferenceKeys() []string {
	return []string{
		"adminActiveSection",
		"adminActiveMilkTab",
		"adminFullscreenMode",
		"editingSubscription",
		"subscriptionUpdate",
		"milkSubscription",
	}
}

// SessionDataKeys lists the local keys wiped on logout.
func SessionDataKeys() []string {
	return []string{
		"authToken", KeyUserName, KeyUserEmail, KeyUserMobile,
		"userSubscriptions", "adminStockData", "deliverySchedule",
		"milkSubscription", KeyMorningDelivery, KeyEveningDelivery,
		KeyMorningMilkType, KeyMorningQuantity, KeyMorningFrequency,
		KeyMorningTimeSlot, KeyMorningDays, KeyEveningMilkType,
		KeyEveningQuantity, KeyEveningFrequency, KeyEveningTimeSlot,
		KeyEveningDays, KeySubscriptionAddress, "pendingSubscription",
	}
}
