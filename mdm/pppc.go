// mdm/pppc.go
package mdm

// ServiceCategory names a privacy service in the PPPC table.
type ServiceCategory string

// The PPPC service categories.
const (
	ServiceAccessibility                ServiceCategory = "accessibility"
	ServiceAddressBook                  ServiceCategory = "address_book"
	ServiceAppleEvents                  ServiceCategory = "apple_events"
	ServiceCalendar                     ServiceCategory = "calendar"
	ServiceCamera                       ServiceCategory = "camera"
	ServiceMicrophone                   ServiceCategory = "microphone"
	ServicePhotos                       ServiceCategory = "photos"
	ServicePostEvent                    ServiceCategory = "post_event"
	ServiceReminders                    ServiceCategory = "reminders"
	ServiceSystemPolicyAllFiles         ServiceCategory = "system_policy_all_files"
	ServiceSystemPolicySysAdminFiles    ServiceCategory = "system_policy_sys_admin_files"
	ServiceFileProviderPresence         ServiceCategory = "file_provider_presence"
	ServiceListenEvent                  ServiceCategory = "listen_event"
	ServiceMediaLibrary                 ServiceCategory = "media_library"
	ServiceScreenCapture                ServiceCategory = "screen_capture"
	ServiceSpeechRecognition            ServiceCategory = "speech_recognition"
	ServiceSystemPolicyDesktopFolder    ServiceCategory = "system_policy_desktop_folder"
	ServiceSystemPolicyDocumentsFolder  ServiceCategory = "system_policy_documents_folder"
	ServiceSystemPolicyDownloadsFolder  ServiceCategory = "system_policy_downloads_folder"
	ServiceSystemPolicyNetworkVolumes   ServiceCategory = "system_policy_network_volumes"
	ServiceSystemPolicyRemovableVolumes ServiceCategory = "system_policy_removable_volumes"
)

// ServiceCategories returns the 21 categories in wire order.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		ServiceAccessibility,
		ServiceAddressBook,
		ServiceAppleEvents,
		ServiceCalendar,
		ServiceCamera,
		ServiceMicrophone,
		ServicePhotos,
		ServicePostEvent,
		ServiceReminders,
		ServiceSystemPolicyAllFiles,
		ServiceSystemPolicySysAdminFiles,
		ServiceFileProviderPresence,
		ServiceListenEvent,
		ServiceMediaLibrary,
		ServiceScreenCapture,
		ServiceSpeechRecognition,
		ServiceSystemPolicyDesktopFolder,
		ServiceSystemPolicyDocumentsFolder,
		ServiceSystemPolicyDownloadsFolder,
		ServiceSystemPolicyNetworkVolumes,
		ServiceSystemPolicyRemovableVolumes,
	}
}

// IdentifierType says how an application is identified.
type IdentifierType string

const (
	IdentifierTypeBundleID IdentifierType = "bundleID"
	IdentifierTypePath     IdentifierType = "path"
)

// Screen capture authorization values.
const (
	AuthorizationAllowStandardUser = "AllowStandardUserToSetSystemService"
	AuthorizationDeny              = "Deny"
)

// PPPCInput grants one application access to a set of services.
type PPPCInput struct {
	Identifier      string
	CodeRequirement string
	Services        []PPPCServiceRequest
}

// PPPCServiceRequest asks for one service. Allowed is ignored for screen capture, which uses
// Authorization instead. The AE receiver fields only apply to apple_events.
type PPPCServiceRequest struct {
	Service        ServiceCategory
	Allowed        bool
	Authorization  string
	StaticCode     bool
	IdentifierType IdentifierType

	AEReceiverIdentifier      string
	AEReceiverIdentifierType  IdentifierType
	AEReceiverCodeRequirement string
}

// AppleEventsReceiver identifies the application receiving Apple events.
type AppleEventsReceiver struct {
	AEReceiverIdentifier      string         `json:"ae_receiver_identifier"`
	AEReceiverIdentifierType  IdentifierType `json:"ae_receiver_identifier_type"`
	AEReceiverCodeRequirement string         `json:"ae_receiver_code_requirement"`
	AEReceiverPredefinedApp   interface{}    `json:"ae_receiver_predefined_app"`
	AEReceiverManualSelection bool           `json:"ae_receiver_manual_selection"`
}

// PPPCServiceRecord is one row of a service list. The receiver fields are present only on
// apple_events rows. RowID keeps the platform's camelCase key.
type PPPCServiceRecord struct {
	Allowed         bool           `json:"allowed"`
	Authorization   string         `json:"authorization"`
	CodeRequirement string         `json:"code_requirement"`
	Comment         string         `json:"comment"`
	IdentifierType  IdentifierType `json:"identifier_type"`
	Identifier      string         `json:"identifier"`
	StaticCode      bool           `json:"static_code"`
	PredefinedApp   interface{}    `json:"predefined_app"`
	ManualSelection bool           `json:"manual_selection"`
	RowID           string         `json:"rowId"`
	*AppleEventsReceiver
}

// PPPCServices is the fixed service table. Every list is non-nil so all 21 keys serialise as arrays.
type PPPCServices struct {
	Accessibility                []PPPCServiceRecord `json:"accessibility"`
	AddressBook                  []PPPCServiceRecord `json:"address_book"`
	AppleEvents                  []PPPCServiceRecord `json:"apple_events"`
	Calendar                     []PPPCServiceRecord `json:"calendar"`
	Camera                       []PPPCServiceRecord `json:"camera"`
	Microphone                   []PPPCServiceRecord `json:"microphone"`
	Photos                       []PPPCServiceRecord `json:"photos"`
	PostEvent                    []PPPCServiceRecord `json:"post_event"`
	Reminders                    []PPPCServiceRecord `json:"reminders"`
	SystemPolicyAllFiles         []PPPCServiceRecord `json:"system_policy_all_files"`
	SystemPolicySysAdminFiles    []PPPCServiceRecord `json:"system_policy_sys_admin_files"`
	FileProviderPresence         []PPPCServiceRecord `json:"file_provider_presence"`
	ListenEvent                  []PPPCServiceRecord `json:"listen_event"`
	MediaLibrary                 []PPPCServiceRecord `json:"media_library"`
	ScreenCapture                []PPPCServiceRecord `json:"screen_capture"`
	SpeechRecognition            []PPPCServiceRecord `json:"speech_recognition"`
	SystemPolicyDesktopFolder    []PPPCServiceRecord `json:"system_policy_desktop_folder"`
	SystemPolicyDocumentsFolder  []PPPCServiceRecord `json:"system_policy_documents_folder"`
	SystemPolicyDownloadsFolder  []PPPCServiceRecord `json:"system_policy_downloads_folder"`
	SystemPolicyNetworkVolumes   []PPPCServiceRecord `json:"system_policy_network_volumes"`
	SystemPolicyRemovableVolumes []PPPCServiceRecord `json:"system_policy_removable_volumes"`
}

func newPPPCServices() PPPCServices {
	var s PPPCServices
	for _, category := range ServiceCategories() {
		list, _ := s.list(category)
		*list = []PPPCServiceRecord{}
	}
	return s
}

// list returns the slice backing category.
func (s *PPPCServices) list(category ServiceCategory) (*[]PPPCServiceRecord, bool) {
	switch category {
	case ServiceAccessibility:
		return &s.Accessibility, true
	case ServiceAddressBook:
		return &s.AddressBook, true
	case ServiceAppleEvents:
		return &s.AppleEvents, true
	case ServiceCalendar:
		return &s.Calendar, true
	case ServiceCamera:
		return &s.Camera, true
	case ServiceMicrophone:
		return &s.Microphone, true
	case ServicePhotos:
		return &s.Photos, true
	case ServicePostEvent:
		return &s.PostEvent, true
	case ServiceReminders:
		return &s.Reminders, true
	case ServiceSystemPolicyAllFiles:
		return &s.SystemPolicyAllFiles, true
	case ServiceSystemPolicySysAdminFiles:
		return &s.SystemPolicySysAdminFiles, true
	case ServiceFileProviderPresence:
		return &s.FileProviderPresence, true
	case ServiceListenEvent:
		return &s.ListenEvent, true
	case ServiceMediaLibrary:
		return &s.MediaLibrary, true
	case ServiceScreenCapture:
		return &s.ScreenCapture, true
	case ServiceSpeechRecognition:
		return &s.SpeechRecognition, true
	case ServiceSystemPolicyDesktopFolder:
		return &s.SystemPolicyDesktopFolder, true
	case ServiceSystemPolicyDocumentsFolder:
		return &s.SystemPolicyDocumentsFolder, true
	case ServiceSystemPolicyDownloadsFolder:
		return &s.SystemPolicyDownloadsFolder, true
	case ServiceSystemPolicyNetworkVolumes:
		return &s.SystemPolicyNetworkVolumes, true
	case ServiceSystemPolicyRemovableVolumes:
		return &s.SystemPolicyRemovableVolumes, true
	}
	return nil, false
}

// Records returns the rows listed under category, or nil for an unknown category.
func (s *PPPCServices) Records(category ServiceCategory) []PPPCServiceRecord {
	list, ok := s.list(category)
	if !ok {
		return nil
	}
	return *list
}

// PPPCPayload is a com.apple.TCC.configuration-profile-policy payload.
type PPPCPayload struct {
	BasePayload
	Services PPPCServices `json:"services"`
}

// PPPC builds a privacy preferences payload. Each requested service becomes its own row, so one
// application asking for several services fans out into several rows sharing its identifier and
// code requirement. An unknown service name fails the whole build with *UnknownServiceError.
func (b *Builder) PPPC(displayName string, inputs []PPPCInput) (*PPPCPayload, error) {
	services := newPPPCServices()
	for _, input := range inputs {
		for _, request := range input.Services {
			if _, ok := services.list(request.Service); !ok {
				return nil, &UnknownServiceError{Service: request.Service}
			}
		}
	}

	payload := &PPPCPayload{
		BasePayload: b.single(KindPPPC, displayName),
		Services:    services,
	}

	for _, input := range inputs {
		for _, request := range input.Services {
			record := PPPCServiceRecord{
				CodeRequirement: input.CodeRequirement,
				IdentifierType:  request.IdentifierType,
				Identifier:      input.Identifier,
				StaticCode:      request.StaticCode,
				ManualSelection: true,
				RowID:           b.ids.NewID(),
			}

			if request.Service == ServiceScreenCapture {
				record.Authorization = request.Authorization
			} else {
				record.Allowed = request.Allowed
			}

			if request.Service == ServiceAppleEvents {
				record.AppleEventsReceiver = &AppleEventsReceiver{
					AEReceiverIdentifier:      request.AEReceiverIdentifier,
					AEReceiverIdentifierType:  request.AEReceiverIdentifierType,
					AEReceiverCodeRequirement: request.AEReceiverCodeRequirement,
					AEReceiverManualSelection: true,
				}
			}

			list, _ := payload.Services.list(request.Service)
			*list = append(*list, record)
		}
	}

	return payload, nil
}
