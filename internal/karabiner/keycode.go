package karabiner

// KeyCode is a Karabiner-Elements key_code value.
type KeyCode string

const (
	// Letters
	KeyA KeyCode = "a"
	KeyB KeyCode = "b"
	KeyC KeyCode = "c"
	KeyD KeyCode = "d"
	KeyE KeyCode = "e"
	KeyF KeyCode = "f"
	KeyG KeyCode = "g"
	KeyH KeyCode = "h"
	KeyI KeyCode = "i"
	KeyJ KeyCode = "j"
	KeyK KeyCode = "k"
	KeyL KeyCode = "l"
	KeyM KeyCode = "m"
	KeyN KeyCode = "n"
	KeyO KeyCode = "o"
	KeyP KeyCode = "p"
	KeyQ KeyCode = "q"
	KeyR KeyCode = "r"
	KeyS KeyCode = "s"
	KeyT KeyCode = "t"
	KeyU KeyCode = "u"
	KeyV KeyCode = "v"
	KeyW KeyCode = "w"
	KeyX KeyCode = "x"
	KeyY KeyCode = "y"
	KeyZ KeyCode = "z"

	// Numerals serialize as bare digits.
	Key1 KeyCode = "1"
	Key2 KeyCode = "2"
	Key3 KeyCode = "3"
	Key4 KeyCode = "4"
	Key5 KeyCode = "5"
	Key6 KeyCode = "6"
	Key7 KeyCode = "7"
	Key8 KeyCode = "8"
	Key9 KeyCode = "9"
	Key0 KeyCode = "0"

	KeyReturnOrEnter       KeyCode = "return_or_enter"
	KeyEscape              KeyCode = "escape"
	KeyDeleteOrBackspace   KeyCode = "delete_or_backspace"
	KeyDeleteForward       KeyCode = "delete_forward"
	KeyTab                 KeyCode = "tab"
	KeySpacebar            KeyCode = "spacebar"
	KeyHyphen              KeyCode = "hyphen"
	KeyEqualSign           KeyCode = "equal_sign"
	KeyOpenBracket         KeyCode = "open_bracket"
	KeyCloseBracket        KeyCode = "close_bracket"
	KeyBackslash           KeyCode = "backslash"
	KeyNonUsPound          KeyCode = "non_us_pound"
	KeySemicolon           KeyCode = "semicolon"
	KeyQuote               KeyCode = "quote"
	KeyGraveAccentAndTilde KeyCode = "grave_accent_and_tilde"
	KeyComma               KeyCode = "comma"
	KeyPeriod              KeyCode = "period"
	KeySlash               KeyCode = "slash"
	KeyNonUsBackslash      KeyCode = "non_us_backslash"
	KeyCapsLock            KeyCode = "caps_lock"
	KeyLeftControl         KeyCode = "left_control"
	KeyLeftShift           KeyCode = "left_shift"
	KeyLeftOption          KeyCode = "left_option"
	KeyLeftCommand         KeyCode = "left_command"
	KeyRightControl        KeyCode = "right_control"
	KeyRightShift          KeyCode = "right_shift"
	KeyRightOption         KeyCode = "right_option"
	KeyRightCommand        KeyCode = "right_command"
	KeyFn                  KeyCode = "fn"

	// Function keys
	KeyF1  KeyCode = "f1"
	KeyF2  KeyCode = "f2"
	KeyF3  KeyCode = "f3"
	KeyF4  KeyCode = "f4"
	KeyF5  KeyCode = "f5"
	KeyF6  KeyCode = "f6"
	KeyF7  KeyCode = "f7"
	KeyF8  KeyCode = "f8"
	KeyF9  KeyCode = "f9"
	KeyF10 KeyCode = "f10"
	KeyF11 KeyCode = "f11"
	KeyF12 KeyCode = "f12"
	KeyF13 KeyCode = "f13"
	KeyF14 KeyCode = "f14"
	KeyF15 KeyCode = "f15"
	KeyF16 KeyCode = "f16"
	KeyF17 KeyCode = "f17"
	KeyF18 KeyCode = "f18"
	KeyF19 KeyCode = "f19"
	KeyF20 KeyCode = "f20"
	KeyF21 KeyCode = "f21"
	KeyF22 KeyCode = "f22"
	KeyF23 KeyCode = "f23"
	KeyF24 KeyCode = "f24"

	// Navigation
	KeyPrintScreen KeyCode = "print_screen"
	KeyScrollLock  KeyCode = "scroll_lock"
	KeyPause       KeyCode = "pause"
	KeyInsert      KeyCode = "insert"
	KeyHome        KeyCode = "home"
	KeyPageUp      KeyCode = "page_up"
	KeyEnd         KeyCode = "end"
	KeyPageDown    KeyCode = "page_down"
	KeyRightArrow  KeyCode = "right_arrow"
	KeyLeftArrow   KeyCode = "left_arrow"
	KeyDownArrow   KeyCode = "down_arrow"
	KeyUpArrow     KeyCode = "up_arrow"

	// Keypad
	KeyKeypadNumLock   KeyCode = "keypad_num_lock"
	KeyKeypadSlash     KeyCode = "keypad_slash"
	KeyKeypadAsterisk  KeyCode = "keypad_asterisk"
	KeyKeypadHyphen    KeyCode = "keypad_hyphen"
	KeyKeypadPlus      KeyCode = "keypad_plus"
	KeyKeypadEnter     KeyCode = "keypad_enter"
	KeyKeypad1         KeyCode = "keypad_1"
	KeyKeypad2         KeyCode = "keypad_2"
	KeyKeypad3         KeyCode = "keypad_3"
	KeyKeypad4         KeyCode = "keypad_4"
	KeyKeypad5         KeyCode = "keypad_5"
	KeyKeypad6         KeyCode = "keypad_6"
	KeyKeypad7         KeyCode = "keypad_7"
	KeyKeypad8         KeyCode = "keypad_8"
	KeyKeypad9         KeyCode = "keypad_9"
	KeyKeypad0         KeyCode = "keypad_0"
	KeyKeypadPeriod    KeyCode = "keypad_period"
	KeyKeypadEqualSign KeyCode = "keypad_equal_sign"
	KeyKeypadComma     KeyCode = "keypad_comma"

	// Media and system
	KeyApplication                            KeyCode = "application"
	KeyPower                                  KeyCode = "power"
	KeyExecute                                KeyCode = "execute"
	KeyHelp                                   KeyCode = "help"
	KeyMenu                                   KeyCode = "menu"
	KeySelect                                 KeyCode = "select"
	KeyStop                                   KeyCode = "stop"
	KeyAgain                                  KeyCode = "again"
	KeyUndo                                   KeyCode = "undo"
	KeyCut                                    KeyCode = "cut"
	KeyCopy                                   KeyCode = "copy"
	KeyPaste                                  KeyCode = "paste"
	KeyFind                                   KeyCode = "find"
	KeyMute                                   KeyCode = "mute"
	KeyVolumeDecrement                        KeyCode = "volume_decrement"
	KeyVolumeIncrement                        KeyCode = "volume_increment"
	KeyDisplayBrightnessDecrement             KeyCode = "display_brightness_decrement"
	KeyDisplayBrightnessIncrement             KeyCode = "display_brightness_increment"
	KeyMissionControl                         KeyCode = "mission_control"
	KeyLaunchpad                              KeyCode = "launchpad"
	KeyDashboard                              KeyCode = "dashboard"
	KeyIlluminationDecrement                  KeyCode = "illumination_decrement"
	KeyIlluminationIncrement                  KeyCode = "illumination_increment"
	KeyRewind                                 KeyCode = "rewind"
	KeyPlayOrPause                            KeyCode = "play_or_pause"
	KeyFastforward                            KeyCode = "fastforward"
	KeyEject                                  KeyCode = "eject"
	KeyAppleDisplayBrightnessDecrement        KeyCode = "apple_display_brightness_decrement"
	KeyAppleDisplayBrightnessIncrement        KeyCode = "apple_display_brightness_increment"
	KeyAppleTopCaseDisplayBrightnessDecrement KeyCode = "apple_top_case_display_brightness_decrement"
	KeyAppleTopCaseDisplayBrightnessIncrement KeyCode = "apple_top_case_display_brightness_increment"

	// International
	KeyLang1              KeyCode = "lang1"
	KeyLang2              KeyCode = "lang2"
	KeyLang3              KeyCode = "lang3"
	KeyLang4              KeyCode = "lang4"
	KeyLang5              KeyCode = "lang5"
	KeyLang6              KeyCode = "lang6"
	KeyLang7              KeyCode = "lang7"
	KeyLang8              KeyCode = "lang8"
	KeyLang9              KeyCode = "lang9"
	KeyJapaneseEisuu      KeyCode = "japanese_eisuu"
	KeyJapaneseKana       KeyCode = "japanese_kana"
	KeyJapanesePcNfer     KeyCode = "japanese_pc_nfer"
	KeyJapanesePcXfer     KeyCode = "japanese_pc_xfer"
	KeyJapanesePcKatakana KeyCode = "japanese_pc_katakana"
	KeyInternational1     KeyCode = "international1"
	KeyInternational2     KeyCode = "international2"
	KeyInternational3     KeyCode = "international3"
	KeyInternational4     KeyCode = "international4"
	KeyInternational5     KeyCode = "international5"
	KeyInternational6     KeyCode = "international6"
	KeyInternational7     KeyCode = "international7"
	KeyInternational8     KeyCode = "international8"
	KeyInternational9     KeyCode = "international9"
	KeyVkNone             KeyCode = "vk_none"
)

// Numerals lists the number-row key codes in keyboard order.
var Numerals = []KeyCode{Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, Key0}

// FunctionKeys lists F1 through F24.
var FunctionKeys = []KeyCode{
	KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12,
	KeyF13, KeyF14, KeyF15, KeyF16, KeyF17, KeyF18, KeyF19, KeyF20, KeyF21, KeyF22, KeyF23, KeyF24,
}
